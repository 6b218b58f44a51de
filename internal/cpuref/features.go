package cpuref

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU capabilities. The flags are reported
// only: neither the GPU planner nor the reference FFT's transform path
// reads them, and the pure-Go arithmetic is the same on every host.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current
// process, mirroring the teacher's internal/fft.DetectFeatures.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
