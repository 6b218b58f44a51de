// Package cpuref implements a correctness-first, pure-Go reference FFT.
//
// This is the "reference CPU FFT used only by the test harness for
// numerical comparison" that spec.md lists as an out-of-scope external
// collaborator: the GPU planner never calls into this package, only
// internal/oracle does, to compute a trusted baseline it can diff a
// compiled plan's device-side result against. It favors correctness and
// simplicity over throughput: a single generic mixed-radix Cooley-Tukey
// path handles every length internal/plantree can plan for, plus an
// iterative radix-2 fast path for power-of-two lengths.
package cpuref

import "github.com/LxyIsMyself/Copy-rocFFT/internal/fftypes"

// Complex is a type alias for the complex number constraint. The
// canonical definition lives in internal/fftypes.
type Complex = fftypes.Complex
