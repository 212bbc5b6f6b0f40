package debug

// Debug goroutine metrics logger. Started only when config.Debug is true.
// Emits goroutine count (runtime metrics) and stack usage at a fixed interval.

import (
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/rs/zerolog"
)

// StartGoroutineLogger launches a ticker that logs goroutine count and stack memory.
func StartGoroutineLogger(interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}
	logger = logger.With().Str("component", "debug").Logger()

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info().
				Uint64("goroutines", samples[0].Value.Uint64()).
				Uint64("stack_inuse", ms.StackInuse).
				Uint64("stack_sys", ms.StackSys).
				Uint64("heap_alloc", ms.HeapAlloc).
				Msg("goroutine-stacks")
		}
	}()
}
