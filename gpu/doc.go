// Package gpu provides the external harness interfaces this module's
// planner targets: a backend registers devices, buffers, streams, and
// FFT plan handles, and a KernelLauncher drives the compiled schedule
// through them. The planner itself never allocates device memory or
// dispatches a kernel; MockBackend exists so tests can exercise the same
// surface on the CPU without a real accelerator driver.
package gpu
