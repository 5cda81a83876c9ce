package state

import (
	"time"

	"github.com/kamholtz/trak/internal/board"
	"github.com/kamholtz/trak/internal/dashboard"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

// AppState manages the application's domain data.
// It holds the records loaded from the database plus the derived read
// models (kanban board, timeline, weekly projection). Derived state is
// recomputed from the records, never edited in place.
type AppState struct {
	// tasks contains all tasks ordered by priority rank then due date
	tasks []*models.Task

	// risks contains the risk register ordered by review date
	risks []*models.Risk

	pis     []*models.ProgramIncrement
	sprints []*models.Sprint
	timeOff []*models.TimeOff

	// board is the kanban partition derived from tasks
	board *board.Board

	// timeline is the gantt layout derived from tasks, nil when no task
	// carries a date
	timeline *timeline.Timeline

	// projection is the current-week dashboard summary
	projection *dashboard.Projection
}

// NewAppState creates a new AppState with the provided records.
func NewAppState(tasks []*models.Task, risks []*models.Risk) *AppState {
	s := &AppState{}
	s.SetTasks(tasks)
	s.SetRisks(risks)
	return s
}

// Tasks returns all loaded tasks.
func (s *AppState) Tasks() []*models.Task {
	return s.tasks
}

// SetTasks replaces the task records and invalidates derived state.
func (s *AppState) SetTasks(tasks []*models.Task) {
	if tasks == nil {
		tasks = []*models.Task{}
	}
	s.tasks = tasks
	s.board = nil
	s.timeline = nil
	s.projection = nil
}

// Risks returns the loaded risk register.
func (s *AppState) Risks() []*models.Risk {
	return s.risks
}

// SetRisks replaces the risk records and invalidates the projection.
func (s *AppState) SetRisks(risks []*models.Risk) {
	if risks == nil {
		risks = []*models.Risk{}
	}
	s.risks = risks
	s.projection = nil
}

// PIs returns the loaded program increments.
func (s *AppState) PIs() []*models.ProgramIncrement { return s.pis }

// SetPIs replaces the program increment records.
func (s *AppState) SetPIs(pis []*models.ProgramIncrement) { s.pis = pis }

// Sprints returns the loaded sprints.
func (s *AppState) Sprints() []*models.Sprint { return s.sprints }

// SetSprints replaces the sprint records.
func (s *AppState) SetSprints(sprints []*models.Sprint) { s.sprints = sprints }

// TimeOff returns the loaded time-off calendar.
func (s *AppState) TimeOff() []*models.TimeOff { return s.timeOff }

// SetTimeOff replaces the time-off records.
func (s *AppState) SetTimeOff(entries []*models.TimeOff) { s.timeOff = entries }

// Board returns the kanban partition, computing it on first use.
func (s *AppState) Board() *board.Board {
	if s.board == nil {
		s.board = board.Partition(s.tasks)
	}
	return s.board
}

// Timeline returns the gantt layout for the given zoom, or nil when no
// task carries a usable date.
func (s *AppState) Timeline(zoom timeline.Zoom) *timeline.Timeline {
	if s.timeline == nil || s.timeline.Zoom != zoom {
		tl, err := timeline.Layout(s.tasks, zoom)
		if err != nil {
			s.timeline = nil
			return nil
		}
		s.timeline = tl
	}
	return s.timeline
}

// Projection returns the current-week dashboard summary for the given
// window, computing it on first use.
func (s *AppState) Projection(weekStart, weekEnd time.Time) *dashboard.Projection {
	if s.projection == nil || !s.projection.WeekStart.Equal(weekStart) {
		s.projection = dashboard.Project(s.tasks, s.risks, weekStart, weekEnd)
	}
	return s.projection
}

// TaskCount returns the number of loaded tasks.
func (s *AppState) TaskCount() int {
	return len(s.tasks)
}
