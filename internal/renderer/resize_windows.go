//go:build windows

package renderer

import "os"

// notifyResize is a no-op on Windows: ConPTY has no SIGWINCH equivalent
// reaching Go's signal package, so the renderer never sees a resize there.
func notifyResize(ch chan os.Signal) {}
