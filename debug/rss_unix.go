//go:build linux || darwin || freebsd || netbsd || openbsd

package debug

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// residentSetSize returns the peak resident set size of the current process in
// bytes. Maxrss is reported in kilobytes except on darwin.
func residentSetSize() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	rss := uint64(ru.Maxrss)
	if runtime.GOOS != "darwin" {
		rss *= 1024
	}
	return rss, nil
}
