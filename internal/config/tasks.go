// Package config – task manifest loading.
//
// tasks.yaml describes the panes the daemon should lay out and, for any
// pane backed by a recurring job rather than an interactive shell, how
// often to re-run it.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// TaskDef describes one task.yaml entry: a command and, optionally, a
// recurrence period. A Task with no Period runs once and its output stays
// on screen until the pane is torn down.
type TaskDef struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	Dir     string `yaml:"dir"`
	Period  string `yaml:"period"` // e.g. "30s", "5m", "1h"; empty = one-shot
}

// PaneLayout positions one task's pane on the host terminal.
type PaneLayout struct {
	TaskID string `yaml:"task_id"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// IsMain reports whether this layout entry is the interactive main pane.
func (p PaneLayout) IsMain() bool { return p.TaskID == "main" }

// TaskManifest is the top-level tasks.yaml document.
type TaskManifest struct {
	Tasks []TaskDef    `yaml:"tasks"`
	Panes []PaneLayout `yaml:"panes"`
}

var periodDigits = regexp.MustCompile(`^([0-9]+)([smh]?)$`)

// LoadTaskManifest reads and validates a tasks.yaml file. maxTasks bounds
// how many tasks a manifest may register (see Config.MaxTasks).
func LoadTaskManifest(path string, maxTasks int) (TaskManifest, error) {
	var m TaskManifest

	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i := range m.Tasks {
		if m.Tasks[i].ID == "" {
			m.Tasks[i].ID = uuid.NewString()
		}
	}

	if len(m.Tasks) > maxTasks {
		return m, fmt.Errorf("%s declares %d tasks, exceeds max_tasks (%d)", path, len(m.Tasks), maxTasks)
	}

	mains := 0
	for _, p := range m.Panes {
		if p.IsMain() {
			mains++
		}
	}
	switch mains {
	case 0:
		return m, fmt.Errorf("%s has no pane with task_id \"main\"", path)
	case 1:
		// expected
	default:
		return m, fmt.Errorf("%s has %d panes with task_id \"main\", want exactly 1", path, mains)
	}

	return m, nil
}

// PeriodSeconds parses a Task's Period string ("30s", "5m", "1h") into a
// whole number of seconds. An empty period means the task is one-shot and
// returns (0, false).
func PeriodSeconds(period string) (int64, bool, error) {
	if period == "" {
		return 0, false, nil
	}
	groups := periodDigits.FindStringSubmatch(period)
	if groups == nil {
		return 0, false, fmt.Errorf("invalid period %q: want digits optionally followed by s, m or h", period)
	}
	base, err := strconv.ParseInt(groups[1], 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid period %q: %w", period, err)
	}
	switch groups[2] {
	case "h":
		return base * 3600, true, nil
	case "m":
		return base * 60, true, nil
	default:
		return base, true, nil
	}
}

// NextOccurrence returns the next run time for a recurring task's period,
// measured from after. Recurrence is expressed as a SECONDLY rrule so the
// same scheduling machinery can later grow DST/calendar-aware rules
// (daily-at-9am, weekdays-only) without changing the pane execution loop.
func NextOccurrence(period string, after time.Time) (time.Time, error) {
	secs, recurring, err := PeriodSeconds(period)
	if err != nil {
		return time.Time{}, err
	}
	if !recurring {
		return time.Time{}, fmt.Errorf("period %q does not recur", period)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.SECONDLY,
		Interval: int(secs),
		Dtstart:  after,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("building recurrence rule for period %q: %w", period, err)
	}
	return r.After(after, false), nil
}
