//go:build !windows

package renderer

import (
	"os"
	"os/signal"
	"syscall"
)

// notifyResize subscribes ch to SIGWINCH, delivered whenever the host
// terminal's dimensions change.
func notifyResize(ch chan os.Signal) {
	signal.Notify(ch, syscall.SIGWINCH)
}
