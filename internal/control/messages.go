// Package control implements the single-goroutine command dispatcher that
// sits between the renderer (taking input, drawing panes) and the set of
// supervised processes. All mutation of pane/task state happens on the
// orchestrator's own goroutine; callers talk to it only through typed
// commands carrying their own reply channel, so no lock is shared between
// the renderer and the orchestrator.
package control

import "github.com/patrick-goecommerce/paneforge/internal/config"

// PaneSize is the width/height a task's pane should run at.
type PaneSize struct {
	Width, Height int
}

// registerCmd registers a task definition and the pane size it should run at.
type registerCmd struct {
	task  config.TaskDef
	size  PaneSize
	reply chan error
}

// resizeCmd updates the pane size recorded for a task.
type resizeCmd struct {
	taskID string
	size   PaneSize
	reply  chan error
}

// activateCmd selects which task's process receives forwarded stdin.
type activateCmd struct {
	taskID string
	reply  chan error
}

// executeCmd runs a task now, interactively if it's the active one,
// captured into its pane otherwise.
type executeCmd struct {
	taskID string
	reply  chan error
}

// runningCmd asks whether the currently active task's process is alive.
type runningCmd struct {
	reply chan bool
}
