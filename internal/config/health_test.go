package config

import "testing"

func TestCrashedTwiceRunning_ExactlyTwoDirty(t *testing.T) {
	if !crashedTwiceRunning([]bool{false, false}) {
		t.Error("two dirty runs in a row should count as a crash streak")
	}
}

func TestCrashedTwiceRunning_OneDirtyOneClean(t *testing.T) {
	if crashedTwiceRunning([]bool{true, false}) {
		t.Error("a clean run in the pair should not count as a crash streak")
	}
}

func TestCrashedTwiceRunning_LooksAtMostRecentPair(t *testing.T) {
	if !crashedTwiceRunning([]bool{true, false, false, false}) {
		t.Error("should detect the streak among the two most recent completed runs")
	}
	if crashedTwiceRunning([]bool{false, false, true, false}) {
		t.Error("a clean run breaking the streak should clear it")
	}
}

func TestCrashedTwiceRunning_TooFewEntries(t *testing.T) {
	if crashedTwiceRunning([]bool{false}) {
		t.Error("a single entry can't show a repeated crash")
	}
	if crashedTwiceRunning(nil) {
		t.Error("no entries can't show a repeated crash")
	}
}

func TestBeginRun_EnablesLoggingAfterTwoDirtyRunsInARow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	BeginRun(&cfg) // run 1 starts dirty, never ends -> simulated crash
	if cfg.LoggingEnabled {
		t.Fatalf("logging should not flip on a single dirty run")
	}

	BeginRun(&cfg) // run 2 starts, sees run 1 still dirty
	if !cfg.LoggingEnabled {
		t.Error("expected logging auto-enabled after two dirty runs in a row")
	}
}

func TestEndRun_DisablesAutoLoggingAfterThreeCleanRuns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	BeginRun(&cfg) // run 1: dirty, no history yet
	BeginRun(&cfg) // run 2: sees run 1 dirty, trips auto-logging
	if !cfg.LoggingEnabled {
		t.Fatalf("setup failed: expected auto-logging enabled before testing recovery")
	}

	EndRun(&cfg) // run 2 ends clean: 1st clean run since auto-enable
	if !cfg.LoggingEnabled {
		t.Fatalf("logging should stay enabled after only 1 clean run")
	}

	BeginRun(&cfg)
	EndRun(&cfg) // 2nd clean run since auto-enable
	if !cfg.LoggingEnabled {
		t.Fatalf("logging should stay enabled after only 2 clean runs")
	}

	BeginRun(&cfg)
	EndRun(&cfg) // 3rd clean run since auto-enable: should disable
	if cfg.LoggingEnabled {
		t.Error("expected logging auto-disabled after three clean runs since auto-enable")
	}
}

func TestBeginRun_LeavesUserEnabledLoggingAlone(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.LoggingEnabled = true
	BeginRun(&cfg)
	EndRun(&cfg)

	h := loadRunHistory()
	if h.AutoVerbose {
		t.Error("BeginRun should not mark logging as auto-enabled when the user already enabled it")
	}
}
