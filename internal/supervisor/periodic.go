package supervisor

import (
	"log"
	"time"

	"github.com/patrick-goecommerce/paneforge/internal/config"
)

// pollInterval is how often the scheduler wakes to check whether any
// periodic task is due.
const pollInterval = 250 * time.Millisecond

// Scheduler runs each registered BackgroundTask on its configured period,
// polling periodically rather than setting one timer per task so that
// adding/removing tasks at runtime never has to cancel anything.
type Scheduler struct {
	tasks   []*BackgroundTask
	periods map[string]time.Duration
	lastRun map[string]time.Time
	stop    chan struct{}
}

// NewScheduler builds a scheduler with no tasks registered yet.
func NewScheduler() *Scheduler {
	return &Scheduler{
		periods: make(map[string]time.Duration),
		lastRun: make(map[string]time.Time),
		stop:    make(chan struct{}),
	}
}

// Register adds a task that should re-run every period. An empty period
// string means the task runs once, immediately, and is never scheduled
// again — call Run on it directly instead of registering it here.
func (s *Scheduler) Register(task *BackgroundTask, period string) error {
	secs, recurring, err := config.PeriodSeconds(period)
	if err != nil {
		return err
	}
	if !recurring {
		return nil
	}
	s.tasks = append(s.tasks, task)
	s.periods[task.ID] = time.Duration(secs) * time.Second
	return nil
}

// Start runs the poll loop in a goroutine. Call Stop to end it.
func (s *Scheduler) Start() {
	go s.loop()
}

// Stop ends the poll loop. Safe to call once.
func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.runDue(now)
		}
	}
}

func (s *Scheduler) runDue(now time.Time) {
	for _, task := range s.tasks {
		period := s.periods[task.ID]
		last := s.lastRun[task.ID]
		if now.Sub(last) < period {
			continue
		}
		s.lastRun[task.ID] = now
		go func(t *BackgroundTask) {
			if err := t.Run(); err != nil {
				log.Printf("task %s: %v", t.ID, err)
			}
		}(task)
	}
}
