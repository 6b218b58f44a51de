package kernelgen

import (
	"crypto/sha256"
	"fmt"

	"github.com/LxyIsMyself/Copy-rocFFT/internal/kernelspec"
)

// Kernel is a fully generated kernel: printed device and global source
// plus the generator hash the RTC cache keys compiled objects by.
type Kernel struct {
	Name          string
	Source        string
	GeneratorHash [32]byte
}

// Generate produces a Kernel for one plan tree leaf. opt.Spec's fields,
// direction, rank, and callback/real-processing flags together form
// the kernel identity of spec.md §3 — two Generate calls with
// equivalent inputs produce byte-identical Source and GeneratorHash, so
// the RTC cache can dedupe them.
func Generate(opt GlobalOptions) Kernel {
	device := Print(GenerateDeviceFunction(opt.Spec, opt.Inverse))
	global := Print(GenerateGlobalKernel(opt))

	source := device + "\n" + global

	name := fmt.Sprintf("forward_length%d_%s", opt.Spec.Length, opt.Spec.Tiling)
	if opt.Inverse {
		name = fmt.Sprintf("inverse_length%d_%s", opt.Spec.Length, opt.Spec.Tiling)
	}

	return Kernel{
		Name:          name,
		Source:        source,
		GeneratorHash: sha256.Sum256([]byte(source)),
	}
}

// Generate2DSingle produces a Kernel for a fused 2D_SINGLE leaf.
func Generate2DSingle(rowSpec, colSpec kernelspec.Spec, inverse bool) Kernel {
	fn := Generate2DSingleKernel(rowSpec, colSpec, inverse)
	source := Print(fn)

	return Kernel{
		Name:          fn.Name,
		Source:        source,
		GeneratorHash: sha256.Sum256([]byte(source)),
	}
}
