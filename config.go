package rocfft

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the process-wide settings read once at startup from the
// environment, following the teacher's plain os.Getenv style — no
// configuration framework is used anywhere in the example pack.
type Config struct {
	// RTCCachePath overrides the default cache file location.
	RTCCachePath string
	// RTCCacheMaxBytes bounds the cache file size; 0 means unbounded.
	RTCCacheMaxBytes int64
	// DebugGeneratedKernels dumps generated kernel source to stderr.
	DebugGeneratedKernels bool
}

// LoadConfig reads ROCFFT_RTC_CACHE_PATH, ROCFFT_RTC_CACHE_MAX_BYTES,
// and ROCFFT_DEBUG_GENERATED_KERNELS from the environment, per spec.md
// §6. Unset or unparsable numeric values fall back to their defaults
// rather than failing process startup.
func LoadConfig() Config {
	cfg := Config{
		RTCCachePath:          os.Getenv("ROCFFT_RTC_CACHE_PATH"),
		DebugGeneratedKernels: os.Getenv("ROCFFT_DEBUG_GENERATED_KERNELS") != "",
	}

	if cfg.RTCCachePath == "" {
		cfg.RTCCachePath = defaultCachePath()
	}

	if raw := os.Getenv("ROCFFT_RTC_CACHE_MAX_BYTES"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			cfg.RTCCacheMaxBytes = n
		}
	}

	return cfg
}

// defaultCachePath mirrors spec.md §6's `$HOME/.cache/<product>/rtc_cache.db`
// using os.UserCacheDir, which resolves to the platform equivalent
// (XDG_CACHE_HOME on Linux, ~/Library/Caches on macOS, %LocalAppData% on
// Windows) without reaching for golang.org/x/sys/unix — no package in
// the example pack pulls in a platform-paths dependency beyond what
// os.UserCacheDir already covers.
func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "rocfft", "rtc_cache.db")
}
