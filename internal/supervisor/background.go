package supervisor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

// BackgroundTask runs a one-shot command and writes its combined output
// into a pane, clearing the pane first whenever the command printed to
// stdout, so such a run replaces the last rather than appending forever.
type BackgroundTask struct {
	ID      string
	Command string
	Dir     string
	Pane    *terminal.Pane
}

// NewBackgroundTask builds a task bound to the given pane.
func NewBackgroundTask(id, command, dir string, pane *terminal.Pane) *BackgroundTask {
	return &BackgroundTask{ID: id, Command: command, Dir: dir, Pane: pane}
}

// Run executes the command to completion and pushes its output into the
// pane. stdout and stderr are both captured; stdout replaces the pane's
// prior contents (screen clear), stderr is appended after it without a
// clear. A run with no stdout leaves the pane's prior contents in place;
// the next run that prints to stdout clears everything, stderr included.
func (b *BackgroundTask) Run() error {
	fields := strings.Fields(b.Command)
	if len(fields) == 0 {
		return fmt.Errorf("task %s: empty command", b.ID)
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Dir = b.Dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	if stdout.Len() > 0 {
		if err := b.Pane.Push([]byte("\x1b[2J" + stdout.String())); err != nil {
			return err
		}
	}
	if stderr.Len() > 0 {
		if err := b.Pane.Push([]byte(stderr.String())); err != nil {
			return err
		}
	}

	return runErr
}
