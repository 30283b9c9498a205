// Package config loads and provides application configuration.
//
// On first run, a default YAML config is written to ~/.paneforge.yaml.
// Subsequent runs read and merge that file with built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-configurable settings.
type Config struct {
	// DefaultShell is the shell spawned for the interactive main pane
	// when no command is given on the command line.
	DefaultShell string `yaml:"default_shell"`

	// DefaultDir is the working directory for the main pane. Empty means
	// the current working directory at launch time. Tasks do not use it:
	// a task with no dir of its own runs in the daemon's working directory.
	DefaultDir string `yaml:"default_dir"`

	// LoggingEnabled turns on verbose internal logging. Auto-managed by
	// the health tracker after repeated crashes or repeated clean runs.
	LoggingEnabled bool `yaml:"logging_enabled"`

	// RestoreLayout controls whether the daemon restores the last saved
	// pane layout on startup.
	RestoreLayout bool `yaml:"restore_layout"`

	// MaxTasks bounds how many periodic/background tasks tasks.yaml may
	// register, to keep a runaway manifest from starving the terminal.
	MaxTasks int `yaml:"max_tasks"`

	// TasksFile points at the task manifest (see tasks.go). Relative to
	// the directory containing this config file if not absolute.
	TasksFile string `yaml:"tasks_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultShell:   "",
		DefaultDir:     "",
		LoggingEnabled: false,
		RestoreLayout:  true,
		MaxTasks:       12,
		TasksFile:      "tasks.yaml",
	}
}

// ShouldRestoreSession reports whether a saved layout should be loaded.
func (c Config) ShouldRestoreSession() bool { return c.RestoreLayout }

// configPath returns the path to ~/.paneforge.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paneforge.yaml")
}

// Load reads the config file, falling back to defaults for missing fields.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		// No config file yet — write defaults for future editing.
		writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.MaxTasks < 1 {
		cfg.MaxTasks = 1
	}
	if cfg.MaxTasks > 64 {
		cfg.MaxTasks = 64
	}
	if cfg.TasksFile == "" {
		cfg.TasksFile = "tasks.yaml"
	}

	return cfg
}

// Save persists cfg to ~/.paneforge.yaml.
func Save(cfg Config) error {
	p := configPath()
	if p == "" {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// writeDefaults persists the default configuration to disk.
func writeDefaults(path string, cfg Config) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return
	}
	header := []byte("# paneforge configuration\n# Edit this file to customise defaults.\n\n")
	_ = os.WriteFile(path, append(header, data...), 0644)
}
