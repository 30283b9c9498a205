// Package config – crash-loop detection tied to the daemon's own Config.
//
// The daemon can't tell a deliberate Ctrl-C from a panic mid-render, so it
// keeps a short history of how the last few runs ended. Two dirty endings
// in a row flips Config.LoggingEnabled on for the caller without being
// asked; three clean endings in a row while that auto-flip is in effect
// turns it back off.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	runHistoryDepth = 5
	crashStreak     = 2
	recoverStreak   = 3
)

// runHistory is the on-disk record BeginRun/EndRun read and update. It
// never appears in Config itself since it isn't user-editable.
type runHistory struct {
	// Clean holds whether each of the last few runs shut down cleanly,
	// oldest first. The entry BeginRun just appended is always false
	// until the matching EndRun flips it.
	Clean []bool `json:"clean"`
	// AutoVerbose is true while LoggingEnabled was switched on by
	// BeginRun rather than by the user editing the config file.
	AutoVerbose bool `json:"auto_verbose"`
	// CleanStreak counts consecutive clean runs since AutoVerbose was
	// set, so EndRun knows when it's safe to switch logging back off.
	CleanStreak int `json:"clean_streak"`
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paneforge-health.json")
}

func loadRunHistory() runHistory {
	p := historyPath()
	if p == "" {
		return runHistory{}
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return runHistory{}
	}
	var h runHistory
	if err := json.Unmarshal(data, &h); err != nil {
		return runHistory{}
	}
	return h
}

func (h runHistory) save() error {
	p := historyPath()
	if p == "" {
		return nil
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// crashedTwiceRunning reports whether the two completed runs before the
// one just appended both ended dirty. clean's last entry is always the
// just-appended (and still dirty) current run, so the pair of interest
// sits one and two slots before it.
func crashedTwiceRunning(clean []bool) bool {
	n := len(clean)
	if n < crashStreak+1 {
		return n == crashStreak && !clean[0] && !clean[1]
	}
	return !clean[n-crashStreak-1] && !clean[n-crashStreak]
}

// BeginRun records the start of a new run as dirty and, if the previous
// two runs both ended dirty, switches cfg.LoggingEnabled on so the crash
// (if there is one) gets logged this time.
func BeginRun(cfg *Config) {
	h := loadRunHistory()
	h.Clean = append(h.Clean, false)
	if len(h.Clean) > runHistoryDepth {
		h.Clean = h.Clean[len(h.Clean)-runHistoryDepth:]
	}
	if n := len(h.Clean); h.AutoVerbose && n >= 2 && !h.Clean[n-2] {
		// the previous run ended dirty: the clean streak starts over
		h.CleanStreak = 0
	}
	if !cfg.LoggingEnabled && crashedTwiceRunning(h.Clean) {
		cfg.LoggingEnabled = true
		h.AutoVerbose = true
		h.CleanStreak = 0
	}
	_ = h.save()
}

// EndRun marks the just-finished run clean and, once three runs in a row
// have ended clean since logging was auto-enabled, switches
// cfg.LoggingEnabled back off.
func EndRun(cfg *Config) {
	h := loadRunHistory()
	if n := len(h.Clean); n > 0 {
		h.Clean[n-1] = true
	}
	if h.AutoVerbose {
		h.CleanStreak++
		if h.CleanStreak >= recoverStreak {
			cfg.LoggingEnabled = false
			h.AutoVerbose = false
			h.CleanStreak = 0
		}
	}
	_ = h.save()
}
