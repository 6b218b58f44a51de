// Command rocfft-plan builds a plan from a kernel token (spec.md §6's
// grammar) and prints its compiled schedule, replacing the teacher's
// cmd/benchkernels as the way to exercise this product from a shell.
package main

import (
	"flag"
	"fmt"
	"os"

	rocfft "github.com/LxyIsMyself/Copy-rocFFT"
	"github.com/LxyIsMyself/Copy-rocFFT/internal/rtccache"
)

func main() {
	var (
		token     = flag.String("token", "", "kernel token, e.g. complex_forward_len_64_single_ip_batch_1_istride_1_CI_ostride_1_CI_idist_64_odist_64_ioffset_0_ooffset_0")
		cachePath = flag.String("cache", "", "RTC cache file path (default: $ROCFFT_RTC_CACHE_PATH or the platform cache dir)")
		noCache   = flag.Bool("no-cache", false, "compile without a persistent RTC cache")
		save      = flag.Bool("save", false, "write the cache file back out after planning")
	)
	flag.Parse()

	if *token == "" {
		fmt.Fprintln(os.Stderr, "rocfft-plan: -token is required")
		os.Exit(2)
	}

	raw, err := rocfft.ParseToken(*token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rocfft-plan: %v\n", err)
		os.Exit(1)
	}

	cfg := rocfft.LoadConfig()
	if *cachePath != "" {
		cfg.RTCCachePath = *cachePath
	}

	var cache *rtccache.Cache
	if !*noCache {
		cache, err = rtccache.LoadFile(cfg.RTCCachePath, cfg.RTCCacheMaxBytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rocfft-plan: loading cache: %v\n", err)
			os.Exit(1)
		}
	}

	plan, err := rocfft.PlanCreate(raw, cache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rocfft-plan: %v\n", err)
		os.Exit(1)
	}
	defer plan.Destroy()

	fmt.Printf("token:         %s\n", *token)
	fmt.Printf("scratch_bytes: %d\n", plan.ScratchBytes())
	fmt.Printf("%4s  %-24s  %-12s  %-12s  %10s  %8s\n", "#", "kernel_id", "grid", "block", "shmem", "batch")

	for i, r := range plan.Schedule() {
		fmt.Printf("%4d  %-24s  %-12v  %-12v  %10d  %8d\n", i, r.KernelID, r.GridDim, r.BlockDim, r.SharedMemBytes, r.BatchCount)
	}

	if cache != nil && *save {
		if err := cache.SaveFile(cfg.RTCCachePath); err != nil {
			fmt.Fprintf(os.Stderr, "rocfft-plan: saving cache: %v\n", err)
			os.Exit(1)
		}
	}
}
