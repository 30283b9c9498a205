package control

import (
	"fmt"
	"log"

	"github.com/patrick-goecommerce/paneforge/internal/config"
	"github.com/patrick-goecommerce/paneforge/internal/supervisor"
	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

// PaneLookup resolves a task ID to the pane it renders into. The
// orchestrator never creates panes itself — the renderer owns the pane
// registry and hands out references through this callback.
type PaneLookup func(taskID string) *terminal.Pane

// Orchestrator owns all task/process state and processes commands one at
// a time off its cmd channel, so no mutex is needed around task state.
type Orchestrator struct {
	tasks  map[string]config.TaskDef
	sizes  map[string]PaneSize
	lookup PaneLookup

	activeTaskID string
	activeProc   *supervisor.MainSession

	cmd chan any

	shutdown chan struct{}
}

// NewOrchestrator builds an orchestrator. Call Run to start its dispatch
// loop in a goroutine.
func NewOrchestrator(lookup PaneLookup) *Orchestrator {
	return &Orchestrator{
		tasks:    make(map[string]config.TaskDef),
		sizes:    make(map[string]PaneSize),
		lookup:   lookup,
		cmd:      make(chan any, 16),
		shutdown: make(chan struct{}),
	}
}

// Run processes commands until Stop is called. Intended to run in its
// own goroutine for the life of the daemon.
func (o *Orchestrator) Run() {
	for {
		select {
		case <-o.shutdown:
			return
		case c := <-o.cmd:
			o.dispatch(c)
		}
	}
}

// Stop ends the dispatch loop.
func (o *Orchestrator) Stop() {
	close(o.shutdown)
}

func (o *Orchestrator) dispatch(c any) {
	switch cmd := c.(type) {
	case registerCmd:
		cmd.reply <- o.register(cmd.task, cmd.size)
	case resizeCmd:
		cmd.reply <- o.resize(cmd.taskID, cmd.size)
	case activateCmd:
		cmd.reply <- o.activate(cmd.taskID)
	case executeCmd:
		cmd.reply <- o.execute(cmd.taskID)
	case runningCmd:
		cmd.reply <- o.running()
	default:
		log.Printf("control: unrecognised command %T", c)
	}
}

func (o *Orchestrator) register(task config.TaskDef, size PaneSize) error {
	o.tasks[task.ID] = task
	o.sizes[task.ID] = size
	return nil
}

func (o *Orchestrator) resize(taskID string, size PaneSize) error {
	o.sizes[taskID] = size
	if o.activeTaskID == taskID && o.activeProc != nil {
		o.activeProc.Resize(size.Width, size.Height)
	}
	return nil
}

func (o *Orchestrator) activate(taskID string) error {
	if _, ok := o.tasks[taskID]; !ok {
		return fmt.Errorf("no such task %q", taskID)
	}
	o.activeTaskID = taskID
	return nil
}

// execute runs a task. The active task runs interactively (its pane
// forwards keyboard input); every other task runs as a captured
// one-shot whose output replaces its pane's contents.
func (o *Orchestrator) execute(taskID string) error {
	task, ok := o.tasks[taskID]
	if !ok {
		return fmt.Errorf("no such task %q", taskID)
	}
	pane := o.lookup(taskID)
	if pane == nil {
		return fmt.Errorf("no pane assigned to task %q", taskID)
	}

	if taskID == o.activeTaskID {
		session := supervisor.NewMainSession(pane)
		if err := session.Start([]string{"sh", "-c", task.Command}, task.Dir, nil); err != nil {
			return err
		}
		o.activeProc = session
		return nil
	}

	bg := supervisor.NewBackgroundTask(taskID, task.Command, task.Dir, pane)
	return bg.Run()
}

func (o *Orchestrator) running() bool {
	return o.activeProc != nil && o.activeProc.IsRunning()
}
