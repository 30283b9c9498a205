// Package supervisor manages the processes behind each pane: the
// PTY-backed interactive main session, and the one-shot or periodic
// background tasks driven by a task manifest, which run with plain pipes.
package supervisor

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	gopty "github.com/aymanbagabas/go-pty"

	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

// Status represents the lifecycle state of a supervised process.
type Status int

const (
	StatusRunning Status = iota
	StatusExited
	StatusError
)

// MainSession wraps a PTY-backed shell (or user-given command) and the
// pane that renders its output. The daemon's interactive main pane is
// backed by one; the orchestrator also starts one when it executes the
// active task.
type MainSession struct {
	mu sync.Mutex

	Pane   *terminal.Pane
	Status Status

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// OutputCh receives a signal each time new data reaches Pane. The
	// send never blocks: a signal is dropped if one is already pending.
	OutputCh chan struct{}

	// ExitCode is set once the process terminates.
	ExitCode int

	// LastOutputAt records when the PTY last produced output.
	LastOutputAt time.Time
}

// NewMainSession builds a session bound to the given pane. Call Start to
// spawn the underlying process.
func NewMainSession(pane *terminal.Pane) *MainSession {
	return &MainSession{
		Pane:     pane,
		Status:   StatusRunning,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start launches argv inside a new PTY. An empty argv falls back to the
// user's shell. dir is the working directory; env holds additional
// environment variables layered on top of the current process's own.
func (s *MainSession) Start(argv []string, dir string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = defaultShell()
	}

	fullEnv := append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)
	fullEnv = append(fullEnv, env...)

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}

	if err := p.Resize(s.Pane.Width(), s.Pane.Height()); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd
	s.Pane.PassThrough = p

	go s.readLoop()
	go s.waitLoop()

	return nil
}

// readLoop continuously reads PTY output and feeds it to the pane.
func (s *MainSession) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			_ = s.Pane.Push(buf[:n])
			s.mu.Lock()
			s.LastOutputAt = time.Now()
			s.mu.Unlock()
			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// waitLoop waits for the process to exit and records its status.
func (s *MainSession) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil {
		if s.cmd.ProcessState != nil {
			s.ExitCode = s.cmd.ProcessState.ExitCode()
		} else {
			s.ExitCode = 1
		}
	} else {
		s.ExitCode = 0
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// Write sends raw bytes (keyboard input) to the PTY.
func (s *MainSession) Write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Resize updates both the PTY and the pane's viewport dimensions.
func (s *MainSession) Resize(width, height int) {
	s.Pane.Resize(width, height)
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_ = pty.Resize(width, height)
	}
}

// Close terminates the process and closes the PTY, blocking until the
// wait loop has observed the exit.
func (s *MainSession) Close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	<-s.done
}

// Done returns a channel closed when the process exits.
func (s *MainSession) Done() <-chan struct{} { return s.done }

// IsRunning reports whether the process is still alive.
func (s *MainSession) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}

// EnableKittyKeyboard requests the kitty keyboard protocol (CSI > 1 u) so
// modified keys (Shift+Enter and friends) reach the child process as
// distinct CSI u sequences instead of being swallowed.
func (s *MainSession) EnableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[>1u"))
	}
}

// DisableKittyKeyboard pops the kitty keyboard protocol flags (CSI < 1 u).
func (s *MainSession) DisableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[<1u"))
	}
}

// defaultShell returns the user's shell command for the current OS.
func defaultShell() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return []string{shell}
	}
	return []string{"/bin/bash"}
}
