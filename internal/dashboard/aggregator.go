// Package dashboard derives the summary projections shown on the landing
// view. Every projection is a pure function of the snapshot it is given;
// nothing here touches the store.
package dashboard

import (
	"sort"
	"time"

	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

// Projection is one render pass worth of dashboard data.
type Projection struct {
	WeekStart time.Time
	WeekEnd   time.Time

	// TaskLoad counts tasks per status, all six buckets zero-filled.
	TaskLoad map[models.Status]int

	// DueThisWeek holds tasks whose effective due date falls inside the
	// week window, ascending by that date.
	DueThisWeek []*models.Task

	// OpenIssues holds non-terminal issue-type tasks, most severe first.
	OpenIssues []*models.Task

	// RisksDue holds risks whose review date falls inside the week window,
	// ascending by review date.
	RisksDue []*models.Risk

	// DependencyCount totals dependency references across all tasks.
	DependencyCount int
}

// CurrentWeek returns the Monday-to-Sunday window containing today.
func CurrentWeek(today time.Time) (time.Time, time.Time) {
	return WeekStartingOn(today, time.Monday)
}

// WeekStartingOn returns the seven-day window containing today with the
// given weekday as its first day.
func WeekStartingOn(today time.Time, first time.Weekday) (time.Time, time.Time) {
	// time.Weekday counts Sunday as 0; shift so first starts the week.
	weekday := (int(today.Weekday()) - int(first) + 7) % 7
	start := today.AddDate(0, 0, -weekday)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 6)
}

// Project derives all dashboard projections from one snapshot.
func Project(tasks []*models.Task, risks []*models.Risk, weekStart, weekEnd time.Time) *Projection {
	p := &Projection{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		TaskLoad:  make(map[models.Status]int, 6),
	}
	for _, s := range models.Statuses() {
		p.TaskLoad[s] = 0
	}

	for _, t := range tasks {
		if t.Status.IsValid() {
			p.TaskLoad[t.Status]++
		}
		p.DependencyCount += len(t.Dependencies)

		if due, ok := timeline.ParseDay(t.EffectiveDueDate()); ok && inWindow(due, weekStart, weekEnd) {
			p.DueThisWeek = append(p.DueThisWeek, t)
		}
		if t.Type == models.TaskTypeIssue && !t.Status.IsTerminal() {
			p.OpenIssues = append(p.OpenIssues, t)
		}
	}

	sort.SliceStable(p.DueThisWeek, func(i, j int) bool {
		return p.DueThisWeek[i].EffectiveDueDate() < p.DueThisWeek[j].EffectiveDueDate()
	})
	sort.SliceStable(p.OpenIssues, func(i, j int) bool {
		return models.PriorityRank(p.OpenIssues[i].Priority) < models.PriorityRank(p.OpenIssues[j].Priority)
	})

	for _, r := range risks {
		if review, ok := timeline.ParseDay(r.ReviewDate); ok && inWindow(review, weekStart, weekEnd) {
			p.RisksDue = append(p.RisksDue, r)
		}
	}
	sort.SliceStable(p.RisksDue, func(i, j int) bool {
		return p.RisksDue[i].ReviewDate < p.RisksDue[j].ReviewDate
	})

	return p
}

// WeeklyRows lays the due-this-week tasks out on the compact weekly
// timeline for the dashboard's mini-Gantt.
func (p *Projection) WeeklyRows() []timeline.Row {
	return timeline.WeeklyLayout(p.DueThisWeek, p.WeekStart, p.WeekEnd)
}

// inWindow reports whether d falls inside the inclusive [start, end] window.
func inWindow(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
