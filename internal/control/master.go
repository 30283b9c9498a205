package control

import "github.com/patrick-goecommerce/paneforge/internal/config"

// MasterControl is the facade callers use to drive the orchestrator. Every method sends
// a command to the orchestrator's goroutine and blocks for its reply, so
// callers never need to reason about the orchestrator's internal state
// directly.
type MasterControl struct {
	orc *Orchestrator
}

// NewMasterControl wraps an already-running Orchestrator.
func NewMasterControl(orc *Orchestrator) *MasterControl {
	return &MasterControl{orc: orc}
}

// Register tells the orchestrator about a task and the pane size it runs at.
func (m *MasterControl) Register(task config.TaskDef, size PaneSize) error {
	reply := make(chan error, 1)
	m.orc.cmd <- registerCmd{task: task, size: size, reply: reply}
	return <-reply
}

// Resize updates the pane size recorded for a task.
func (m *MasterControl) Resize(taskID string, size PaneSize) error {
	reply := make(chan error, 1)
	m.orc.cmd <- resizeCmd{taskID: taskID, size: size, reply: reply}
	return <-reply
}

// Activate selects which task's process receives forwarded keyboard input.
func (m *MasterControl) Activate(taskID string) error {
	reply := make(chan error, 1)
	m.orc.cmd <- activateCmd{taskID: taskID, reply: reply}
	return <-reply
}

// Execute runs a task by ID.
func (m *MasterControl) Execute(taskID string) error {
	reply := make(chan error, 1)
	m.orc.cmd <- executeCmd{taskID: taskID, reply: reply}
	return <-reply
}

// Running reports whether the active task's process is alive.
func (m *MasterControl) Running() bool {
	reply := make(chan bool, 1)
	m.orc.cmd <- runningCmd{reply: reply}
	return <-reply
}
