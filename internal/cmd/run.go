package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patrick-goecommerce/paneforge/internal/config"
	"github.com/patrick-goecommerce/paneforge/internal/control"
	"github.com/patrick-goecommerce/paneforge/internal/renderer"
	"github.com/patrick-goecommerce/paneforge/internal/supervisor"
	"github.com/patrick-goecommerce/paneforge/internal/terminal"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [-- <command> [args...]]",
		Short: "Start the daemon: lay out panes and run the interactive main session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
	return cmd
}

func run(mainArgv []string) error {
	cfg := config.Load()
	config.BeginRun(&cfg)
	if !cfg.LoggingEnabled {
		log.SetOutput(io.Discard)
	}
	defer func() {
		config.EndRun(&cfg)
		_ = config.Save(cfg)
	}()

	manifestPath := cfg.TasksFile
	if !filepath.IsAbs(manifestPath) {
		home, _ := os.UserHomeDir()
		manifestPath = filepath.Join(home, manifestPath)
	}

	manifest, manifestErr := config.LoadTaskManifest(manifestPath, cfg.MaxTasks)
	if manifestErr != nil {
		manifest = config.TaskManifest{Panes: fallbackPanes(cfg)}
	}

	r := renderer.NewRenderer(os.Stdout)
	if err := r.EnterRawMode(); err != nil {
		return err
	}
	defer r.Close()

	var mainLayout *config.PaneLayout
	for i := range manifest.Panes {
		layout := manifest.Panes[i]
		mode := terminal.ScrollModeScroll
		pane := terminal.NewPane(layout.TaskID, layout.X, layout.Y, layout.Width, layout.Height, mode)
		r.AddPane(pane)
		if layout.IsMain() {
			mainLayout = &manifest.Panes[i]
		}
	}
	if mainLayout == nil {
		return fmt.Errorf("task manifest has no main pane")
	}

	orc := control.NewOrchestrator(r.Pane)
	go orc.Run()
	defer orc.Stop()

	scheduler := supervisor.NewScheduler()
	registered := make(map[string]bool)
	registerTasks(scheduler, manifest, r, registered)
	scheduler.Start()
	defer scheduler.Stop()

	if manifestErr == nil {
		if stopWatch, err := config.WatchTaskManifest(manifestPath, cfg.MaxTasks, func(updated config.TaskManifest) {
			registerTasks(scheduler, updated, r, registered)
		}); err == nil {
			defer stopWatch()
		}
	}

	mainPane := r.Pane("main")
	session := supervisor.NewMainSession(mainPane)
	if len(mainArgv) == 0 {
		mainArgv = nil
		if cfg.DefaultShell != "" {
			mainArgv = []string{cfg.DefaultShell}
		}
	}
	if err := session.Start(mainArgv, cfg.DefaultDir, nil); err != nil {
		return err
	}
	defer session.Close()

	go forwardStdin(session)
	go func() {
		<-session.Done()
		r.Stop()
	}()

	r.Run(session)

	if manifestErr != nil {
		saveLayout(manifest)
	}
	return nil
}

// fallbackPanes reconstructs a pane layout for runs with no usable task
// manifest: the last saved layout if restoration is enabled, otherwise a
// single full main pane.
func fallbackPanes(cfg config.Config) []config.PaneLayout {
	if cfg.ShouldRestoreSession() {
		if saved := config.LoadLayout(); saved != nil {
			panes := make([]config.PaneLayout, len(saved.Panes))
			for i, p := range saved.Panes {
				panes[i] = config.PaneLayout{TaskID: p.ID, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
			}
			return panes
		}
	}
	return []config.PaneLayout{{TaskID: "main", X: 1, Y: 1, Width: 80, Height: 24}}
}

// saveLayout persists the current pane layout so a future manifest-less
// run can restore it via fallbackPanes.
func saveLayout(manifest config.TaskManifest) {
	saved := config.SavedLayout{Panes: make([]config.SavedPane, len(manifest.Panes))}
	for i, p := range manifest.Panes {
		saved.Panes[i] = config.SavedPane{ID: p.TaskID, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
	}
	_ = config.SaveLayout(saved)
}

// registerTasks schedules any task in manifest not already tracked in
// registered. Re-running it after a manifest hot-reload picks up newly
// added tasks without disturbing ones already running.
func registerTasks(scheduler *supervisor.Scheduler, manifest config.TaskManifest, r *renderer.Renderer, registered map[string]bool) {
	for _, task := range manifest.Tasks {
		if registered[task.ID] {
			continue
		}
		pane := r.Pane(task.ID)
		if pane == nil {
			continue
		}
		bg := supervisor.NewBackgroundTask(task.ID, task.Command, task.Dir, pane)
		if err := scheduler.Register(bg, task.Period); err != nil {
			continue
		}
		if task.Period == "" {
			// one-shot: the scheduler doesn't track it, so run it now
			go func() {
				if err := bg.Run(); err != nil {
					log.Printf("task %s: %v", task.ID, err)
				}
			}()
		}
		registered[task.ID] = true
	}
}

func forwardStdin(session *supervisor.MainSession) {
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			_, _ = session.Write(buf[:n])
		}
		if err != nil {
			return
		}
	}
}
