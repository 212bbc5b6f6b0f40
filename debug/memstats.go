package debug

// Memory/RSS periodic logger enabled when config.Debug is true.
// Logs resident set size along with Go heap stats to correlate native vs heap
// growth; decoded photos live in Tk's native heap.

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

// StartMemLogger launches a goroutine that logs memory stats every interval.
// It is best-effort; failures to query RSS are logged once and suppressed.
func StartMemLogger(interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	logger = logger.With().Str("component", "debug").Logger()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			rss, err := residentSetSize()
			if err != nil && !rssErrLogged {
				logger.Warn().Err(err).Msg("memlog: rss query failed")
				rssErrLogged = true
			}
			logger.Info().
				Int("goroutines", runtime.NumGoroutine()).
				Uint64("heap_alloc", ms.HeapAlloc).
				Uint64("heap_inuse", ms.HeapInuse).
				Uint64("heap_idle", ms.HeapIdle).
				Uint64("heap_sys", ms.HeapSys).
				Uint64("next_gc", ms.NextGC).
				Uint64("rss", rss).
				Uint32("num_gc", ms.NumGC).
				Msg("memstats")
		}
	}()
}
