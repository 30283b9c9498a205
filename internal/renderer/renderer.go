// Package renderer drives the host terminal: it puts stdin into raw mode,
// owns the pane registry, and periodically flushes every dirty pane to a
// single buffered write so a fast-typing child process never tears the
// screen mid-frame.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/patrick-goecommerce/paneforge/internal/supervisor"
	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

// tickInterval is how often pending output is flushed to the host
// terminal, coalescing bursts of child-process writes into one frame.
const tickInterval = 4 * time.Millisecond

// Renderer owns every pane visible on the host terminal and the raw-mode
// state of stdin/stdout.
type Renderer struct {
	mu    sync.Mutex
	panes map[string]*terminal.Pane
	order []string // render order, stable across map iteration

	out io.Writer

	oldState *term.State

	stop chan struct{}
	done chan struct{}
}

// NewRenderer builds a renderer that writes to w (normally os.Stdout).
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		panes: make(map[string]*terminal.Pane),
		out:   w,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// AddPane registers a pane for rendering. Panes are drawn in registration
// order, so later panes paint over earlier ones where they overlap.
func (r *Renderer) AddPane(p *terminal.Pane) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.panes[p.ID]; !exists {
		r.order = append(r.order, p.ID)
	}
	r.panes[p.ID] = p
}

// Pane looks up a registered pane by ID. Used as a control.PaneLookup.
func (r *Renderer) Pane(id string) *terminal.Pane {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.panes[id]
}

// EnterRawMode puts the controlling terminal into raw mode if stdin is a
// TTY. Call Close to restore it.
func (r *Renderer) EnterRawMode() error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return nil
	}
	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	r.oldState = state
	return nil
}

// Close restores the terminal to its original mode.
func (r *Renderer) Close() error {
	if r.oldState == nil {
		return nil
	}
	return term.Restore(int(os.Stdin.Fd()), r.oldState)
}

// Run starts the periodic flush loop and a SIGWINCH handler for the
// given main session, blocking until Stop is called.
func (r *Renderer) Run(main *supervisor.MainSession) {
	defer close(r.done)

	resize := make(chan os.Signal, 1)
	notifyResize(resize)
	defer signal.Stop(resize)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-resize:
			r.handleResize(main)
		case <-ticker.C:
			r.flush()
		}
	}
}

// Stop ends the Run loop and waits for it to exit.
func (r *Renderer) Stop() {
	close(r.stop)
	<-r.done
}

// flush writes every dirty pane's pending output in one call so the
// kernel sees a single write, not one per pane.
func (r *Renderer) flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf bytes.Buffer
	for _, id := range r.order {
		pane := r.panes[id]
		if err := pane.Render(&buf); err != nil {
			continue
		}
	}
	if buf.Len() > 0 {
		_, _ = r.out.Write(buf.Bytes())
	}
}

// handleResize queries the host terminal's new dimensions and resizes
// the main session to fit. Individual background panes keep their
// configured sizes from the task manifest.
func (r *Renderer) handleResize(main *supervisor.MainSession) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	main.Resize(width, height)
}
