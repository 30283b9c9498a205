package renderer

import (
	"bytes"
	"testing"

	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

func TestAddPaneThenLookup(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	pane := terminal.NewPane("main", 1, 1, 10, 2, terminal.ScrollModeScroll)
	r.AddPane(pane)

	if got := r.Pane("main"); got != pane {
		t.Fatalf("expected registered pane back, got %v", got)
	}
	if r.Pane("missing") != nil {
		t.Fatal("expected nil for an unregistered pane id")
	}
}

func TestFlushWritesDirtyPaneOutput(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	pane := terminal.NewPane("main", 1, 1, 10, 2, terminal.ScrollModeScroll)
	if err := pane.Push([]byte("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.AddPane(pane)

	r.flush()
	if !bytes.Contains(out.Bytes(), []byte("hi")) {
		t.Fatalf("expected flushed output to contain pane content, got %q", out.String())
	}
}

func TestFlushIsNoopWithNoRegisteredPanes(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	r.flush()
	if out.Len() != 0 {
		t.Fatalf("expected no output with no panes, got %q", out.String())
	}
}

func TestAddPanePreservesRegistrationOrder(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{})
	a := terminal.NewPane("a", 1, 1, 10, 2, terminal.ScrollModeScroll)
	b := terminal.NewPane("b", 1, 1, 10, 2, terminal.ScrollModeScroll)
	r.AddPane(a)
	r.AddPane(b)
	r.AddPane(a) // re-registering shouldn't duplicate or reorder

	if len(r.order) != 2 || r.order[0] != "a" || r.order[1] != "b" {
		t.Fatalf("expected stable order [a b], got %v", r.order)
	}
}
