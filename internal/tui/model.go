package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/app"
	"github.com/kamholtz/trak/internal/config"
	"github.com/kamholtz/trak/internal/dashboard"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
	"github.com/kamholtz/trak/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	app *app.App
	cfg *config.Config

	appState          *state.AppState
	uiState           *state.UIState
	searchState       *state.SearchState
	formState         *state.FormState
	notificationState *state.NotificationState

	// now anchors the dashboard week window, injected for tests
	now func() time.Time
}

// InitialModel creates and initializes the TUI model with data from the database
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	m := Model{
		ctx:               ctx,
		app:               a,
		cfg:               cfg,
		appState:          state.NewAppState(nil, nil),
		uiState:           state.NewUIState(cfg.Timeline.Zoom()),
		searchState:       state.NewSearchState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
		now:               time.Now,
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// reload refreshes all records from the services. Derived read models
// (board, timeline, projection) are rebuilt lazily from the new records.
func (m *Model) reload() {
	tasks, err := m.app.TaskService.ListTasks(m.ctx)
	if err != nil {
		slog.Error("failed to load tasks", "error", err)
		tasks = []*models.Task{}
	}
	m.appState.SetTasks(tasks)

	risks, err := m.app.RiskService.ListRisks(m.ctx)
	if err != nil {
		slog.Error("failed to load risks", "error", err)
		risks = []*models.Risk{}
	}
	m.appState.SetRisks(risks)

	pis, err := m.app.PlanService.ListPIs(m.ctx)
	if err != nil {
		slog.Error("failed to load program increments", "error", err)
	}
	m.appState.SetPIs(pis)

	sprints, err := m.app.PlanService.ListSprints(m.ctx)
	if err != nil {
		slog.Error("failed to load sprints", "error", err)
	}
	m.appState.SetSprints(sprints)

	timeOff, err := m.app.PlanService.ListTimeOff(m.ctx)
	if err != nil {
		slog.Error("failed to load time off", "error", err)
	}
	m.appState.SetTimeOff(timeOff)
}

// currentTimeline returns the gantt layout with search highlights applied.
func (m *Model) currentTimeline() *timeline.Timeline {
	tl := m.appState.Timeline(m.uiState.Zoom())
	if tl == nil {
		return nil
	}
	query := ""
	// Highlight while the query is being typed and after it is applied.
	if m.searchState.IsActive || m.uiState.Mode() == state.SearchMode {
		query = m.searchState.Query
	}
	timeline.Highlight(tl.Rows, query)
	return tl
}

// currentProjection returns the dashboard summary for the week
// containing now.
func (m *Model) currentProjection() *dashboard.Projection {
	weekStart, weekEnd := dashboard.WeekStartingOn(m.now(), m.cfg.Timeline.WeekStartDay())
	return m.appState.Projection(weekStart, weekEnd)
}

// currentBoardColumn returns the tasks in the selected kanban column.
func (m *Model) currentBoardColumn() []*models.Task {
	statuses := models.Statuses()
	col := m.uiState.SelectedColumn()
	if col < 0 || col >= len(statuses) {
		return nil
	}
	return m.appState.Board().Tasks(statuses[col])
}

// selectedTask resolves the selection to a task record for the board and
// timeline views. Other views have no task selection.
func (m *Model) selectedTask() *models.Task {
	switch m.uiState.View() {
	case state.BoardView:
		tasks := m.currentBoardColumn()
		if m.uiState.BoardLayout() == state.ListLayout {
			tasks = m.appState.Tasks()
		}
		if row := m.uiState.SelectedRow(); row >= 0 && row < len(tasks) {
			return tasks[row]
		}
	case state.TimelineView:
		tl := m.currentTimeline()
		if tl == nil {
			return nil
		}
		if row := m.uiState.SelectedRow(); row >= 0 && row < len(tl.Rows) {
			return tl.Rows[row].Task
		}
	}
	return nil
}

// selectedRisk resolves the selection to a risk record in the risk view.
func (m *Model) selectedRisk() *models.Risk {
	if m.uiState.View() != state.RiskView {
		return nil
	}
	risks := m.appState.Risks()
	if row := m.uiState.SelectedRow(); row >= 0 && row < len(risks) {
		return risks[row]
	}
	return nil
}

// rowCount returns the number of selectable rows in the active view.
func (m *Model) rowCount() int {
	switch m.uiState.View() {
	case state.BoardView:
		if m.uiState.BoardLayout() == state.ListLayout {
			return len(m.appState.Tasks())
		}
		return len(m.currentBoardColumn())
	case state.TimelineView:
		if tl := m.currentTimeline(); tl != nil {
			return len(tl.Rows)
		}
		return 0
	case state.RiskView:
		return len(m.appState.Risks())
	case state.PlanView:
		return len(m.appState.PIs()) + len(m.appState.Sprints()) + len(m.appState.TimeOff())
	default:
		return 0
	}
}

// clampSelection keeps the row selection inside the active view's rows.
func (m *Model) clampSelection() {
	count := m.rowCount()
	if count == 0 {
		m.uiState.SetSelectedRow(0)
		return
	}
	if m.uiState.SelectedRow() >= count {
		m.uiState.SetSelectedRow(count - 1)
	}
}
