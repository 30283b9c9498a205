package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxTasks != 12 {
		t.Fatalf("expected default MaxTasks 12, got %d", cfg.MaxTasks)
	}
	if !cfg.RestoreLayout {
		t.Fatal("expected RestoreLayout true by default")
	}
	if cfg.TasksFile != "tasks.yaml" {
		t.Fatalf("expected default tasks file, got %q", cfg.TasksFile)
	}
}

func TestShouldRestoreSession(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ShouldRestoreSession() {
		t.Fatal("expected restore to be enabled by default")
	}
	cfg.RestoreLayout = false
	if cfg.ShouldRestoreSession() {
		t.Fatal("expected restore to be disabled")
	}
}
