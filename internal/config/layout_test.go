package config

import (
	"os"
	"testing"
)

func TestSaveLoadLayoutRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := SavedLayout{
		Panes: []SavedPane{
			{ID: "main", Command: []string{"bash"}, Dir: "/tmp", X: 1, Y: 1, Width: 80, Height: 24, Fixed: false},
		},
	}
	if err := SaveLayout(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := LoadLayout()
	if got == nil {
		t.Fatal("expected a loaded layout, got nil")
	}
	if len(got.Panes) != 1 || got.Panes[0].ID != "main" {
		t.Fatalf("unexpected layout contents: %+v", got)
	}
}

func TestLoadLayoutMissingFileReturnsNil(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := LoadLayout(); got != nil {
		t.Fatalf("expected nil for missing layout file, got %+v", got)
	}
}

func TestLoadLayoutEmptyPanesReturnsNil(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := SaveLayout(SavedLayout{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := LoadLayout(); got != nil {
		t.Fatalf("expected nil for empty layout, got %+v", got)
	}
}

func TestClearLayoutRemovesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := SavedLayout{Panes: []SavedPane{{ID: "main"}}}
	if err := SaveLayout(l); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ClearLayout()
	if _, err := os.Stat(layoutPath()); !os.IsNotExist(err) {
		t.Fatalf("expected layout file removed, got err=%v", err)
	}
}
