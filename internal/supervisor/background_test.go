package supervisor

import (
	"testing"

	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

func TestBackgroundTaskRunCapturesStdout(t *testing.T) {
	pane := terminal.NewPane("build", 1, 1, 40, 5, terminal.ScrollModeScroll)
	task := NewBackgroundTask("build", "echo hello", "", pane)
	if err := task.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pane.ViewPort().Line(0).Plaintext(); got != "hello" {
		t.Fatalf("expected \"hello\", got %q", got)
	}
}

func TestBackgroundTaskRunEmptyCommandErrors(t *testing.T) {
	pane := terminal.NewPane("build", 1, 1, 40, 5, terminal.ScrollModeScroll)
	task := NewBackgroundTask("build", "", "", pane)
	if err := task.Run(); err == nil {
		t.Fatal("expected an error for an empty command")
	}
}

func TestBackgroundTaskRunNonzeroExitReturnsError(t *testing.T) {
	pane := terminal.NewPane("build", 1, 1, 40, 5, terminal.ScrollModeScroll)
	task := NewBackgroundTask("build", "false", "", pane)
	if err := task.Run(); err == nil {
		t.Fatal("expected an error for a failing command")
	}
}
