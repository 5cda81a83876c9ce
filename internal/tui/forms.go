package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/services/risk"
	"github.com/kamholtz/trak/internal/services/task"
	"github.com/kamholtz/trak/internal/tui/huhforms"
	"github.com/kamholtz/trak/internal/tui/state"
	"github.com/kamholtz/trak/internal/user"
)

// handleAddRecord opens a blank form for the record type of the active view.
func (m Model) handleAddRecord() (tea.Model, tea.Cmd) {
	m.formState.Reset()

	switch m.uiState.View() {
	case state.DashboardView, state.BoardView, state.TimelineView:
		m.formState.Kind = state.TaskForm
		m.formState.Status = string(models.StatusBacklog)
		m.formState.Priority = models.PriorityMedium
		m.formState.Assignee = user.DefaultAssignee()
		if m.uiState.View() == state.BoardView {
			// New cards land in the selected column
			statuses := models.Statuses()
			if col := m.uiState.SelectedColumn(); col < len(statuses) {
				m.formState.Status = string(statuses[col])
			}
		}
		m.formState.Form = m.buildTaskForm()
	case state.RiskView:
		m.formState.Kind = state.RiskForm
		m.formState.Impact = "medium"
		m.formState.Probability = "medium"
		m.formState.Form = m.buildRiskForm()
	case state.PlanView:
		kind, _ := m.planRowKind()
		m.formState.Kind = kind
		m.formState.Form = m.buildPlanForm(kind)
	}

	if m.formState.Form == nil {
		return m, nil
	}
	m.uiState.SetMode(state.FormMode)
	return m, m.formState.Form.Init()
}

// handleEditRecord opens a form pre-filled with the selected record.
func (m Model) handleEditRecord() (tea.Model, tea.Cmd) {
	m.formState.Reset()

	switch m.uiState.View() {
	case state.BoardView, state.TimelineView:
		t := m.selectedTask()
		if t == nil {
			return m, nil
		}
		m.formState.Kind = state.TaskForm
		m.formState.EditingID = t.ID
		m.formState.Title = t.Title
		m.formState.Description = t.Description
		m.formState.Status = string(t.Status)
		m.formState.Priority = t.Priority
		m.formState.DueDate = t.DueDate
		m.formState.StartDate = t.StartDate
		m.formState.EndDate = t.EndDate
		m.formState.Assignee = t.Assignee
		m.formState.Form = m.buildTaskForm()
	case state.RiskView:
		r := m.selectedRisk()
		if r == nil {
			return m, nil
		}
		m.formState.Kind = state.RiskForm
		m.formState.EditingID = r.ID
		m.formState.Title = r.Title
		m.formState.Description = r.Description
		m.formState.Impact = r.Impact
		m.formState.Probability = r.Probability
		m.formState.Mitigation = r.Mitigation
		m.formState.Owner = r.Owner
		m.formState.ReviewDate = r.ReviewDate
		m.formState.Form = m.buildRiskForm()
	case state.PlanView:
		m.fillPlanForm()
	}

	if m.formState.Form == nil {
		return m, nil
	}
	m.uiState.SetMode(state.FormMode)
	return m, m.formState.Form.Init()
}

// handleFormMode forwards messages to the active huh form and commits
// the record when the form completes.
func (m Model) handleFormMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formState.Form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.formState.Reset()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	form, cmd := m.formState.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.formState.Form = f
	}

	if m.formState.Form.State == huh.StateCompleted {
		if m.formState.Confirm {
			m.submitForm()
		}
		m.formState.Reset()
		m.uiState.SetMode(state.NormalMode)
		m.reload()
		m.clampSelection()
	}

	return m, cmd
}

// submitForm writes the form buffers through the matching service.
func (m *Model) submitForm() {
	var err error
	switch m.formState.Kind {
	case state.TaskForm:
		err = m.submitTaskForm()
	case state.RiskForm:
		err = m.submitRiskForm()
	case state.PIForm, state.SprintForm, state.TimeOffForm:
		err = m.submitPlanForm()
	}
	if err != nil {
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.notificationState.Add(state.LevelInfo, "Saved")
}

func (m *Model) submitTaskForm() error {
	fs := m.formState
	if fs.IsEditing() {
		status := models.Status(fs.Status)
		return m.app.TaskService.UpdateTask(m.ctx, task.UpdateTaskRequest{
			TaskID:      fs.EditingID,
			Title:       &fs.Title,
			Description: &fs.Description,
			Status:      &status,
			Priority:    &fs.Priority,
			DueDate:     &fs.DueDate,
			StartDate:   &fs.StartDate,
			EndDate:     &fs.EndDate,
			Assignee:    &fs.Assignee,
		})
	}
	_, err := m.app.TaskService.CreateTask(m.ctx, task.CreateTaskRequest{
		Title:       fs.Title,
		Description: fs.Description,
		Status:      models.Status(fs.Status),
		Priority:    fs.Priority,
		DueDate:     fs.DueDate,
		StartDate:   fs.StartDate,
		EndDate:     fs.EndDate,
		Assignee:    fs.Assignee,
	})
	return err
}

func (m *Model) submitRiskForm() error {
	fs := m.formState
	if fs.IsEditing() {
		return m.app.RiskService.UpdateRisk(m.ctx, risk.UpdateRiskRequest{
			RiskID:      fs.EditingID,
			Title:       &fs.Title,
			Description: &fs.Description,
			Impact:      &fs.Impact,
			Probability: &fs.Probability,
			Mitigation:  &fs.Mitigation,
			Owner:       &fs.Owner,
			ReviewDate:  &fs.ReviewDate,
		})
	}
	_, err := m.app.RiskService.CreateRisk(m.ctx, risk.CreateRiskRequest{
		Title:       fs.Title,
		Description: fs.Description,
		Impact:      fs.Impact,
		Probability: fs.Probability,
		Mitigation:  fs.Mitigation,
		Owner:       fs.Owner,
		ReviewDate:  fs.ReviewDate,
	})
	return err
}

func (m *Model) submitPlanForm() error {
	fs := m.formState
	switch fs.Kind {
	case state.PIForm:
		if fs.IsEditing() {
			return m.app.PlanService.UpdatePI(m.ctx, fs.EditingID, fs.Title, fs.StartDate, fs.EndDate)
		}
		_, err := m.app.PlanService.CreatePI(m.ctx, fs.Title, fs.StartDate, fs.EndDate)
		return err
	case state.SprintForm:
		if fs.IsEditing() {
			return m.app.PlanService.UpdateSprint(m.ctx, fs.EditingID, fs.Title, fs.StartDate, fs.EndDate)
		}
		_, err := m.app.PlanService.CreateSprint(m.ctx, nil, fs.Title, fs.StartDate, fs.EndDate)
		return err
	case state.TimeOffForm:
		_, err := m.app.PlanService.CreateTimeOff(m.ctx, fs.StartDate, fs.Category, fs.Note)
		return err
	}
	return nil
}

func (m *Model) buildTaskForm() *huh.Form {
	fs := m.formState
	return huhforms.CreateTaskForm(
		&fs.Title, &fs.Description, &fs.Status, &fs.Priority,
		&fs.DueDate, &fs.StartDate, &fs.EndDate, &fs.Assignee, &fs.Confirm,
	).WithTheme(huhforms.CreateTrakTheme(m.cfg.ColorScheme))
}

func (m *Model) buildRiskForm() *huh.Form {
	fs := m.formState
	return huhforms.CreateRiskForm(
		&fs.Title, &fs.Description, &fs.Impact, &fs.Probability,
		&fs.Mitigation, &fs.Owner, &fs.ReviewDate, &fs.Confirm,
	).WithTheme(huhforms.CreateTrakTheme(m.cfg.ColorScheme))
}

func (m *Model) buildPlanForm(kind state.FormKind) *huh.Form {
	fs := m.formState
	var form *huh.Form
	switch kind {
	case state.SprintForm:
		form = huhforms.CreateWindowForm("sprint", &fs.Title, &fs.StartDate, &fs.EndDate, &fs.Confirm)
	case state.TimeOffForm:
		form = huhforms.CreateTimeOffForm(&fs.StartDate, &fs.Category, &fs.Note, &fs.Confirm)
	default:
		form = huhforms.CreateWindowForm("program increment", &fs.Title, &fs.StartDate, &fs.EndDate, &fs.Confirm)
	}
	return form.WithTheme(huhforms.CreateTrakTheme(m.cfg.ColorScheme))
}

// planRowKind maps the selected plan-view row to a record kind and the
// index within that record's slice. Rows list PIs, then sprints, then
// time off.
func (m *Model) planRowKind() (state.FormKind, int) {
	row := m.uiState.SelectedRow()
	if row < len(m.appState.PIs()) {
		return state.PIForm, row
	}
	row -= len(m.appState.PIs())
	if row < len(m.appState.Sprints()) {
		return state.SprintForm, row
	}
	row -= len(m.appState.Sprints())
	return state.TimeOffForm, row
}

// fillPlanForm opens an edit form for the selected plan-view record.
func (m *Model) fillPlanForm() {
	kind, idx := m.planRowKind()
	fs := m.formState
	fs.Kind = kind

	switch kind {
	case state.PIForm:
		if idx >= len(m.appState.PIs()) {
			return
		}
		pi := m.appState.PIs()[idx]
		fs.EditingID = pi.ID
		fs.Title = pi.Name
		fs.StartDate = pi.StartDate
		fs.EndDate = pi.EndDate
	case state.SprintForm:
		if idx >= len(m.appState.Sprints()) {
			return
		}
		s := m.appState.Sprints()[idx]
		fs.EditingID = s.ID
		fs.Title = s.Name
		fs.StartDate = s.StartDate
		fs.EndDate = s.EndDate
	case state.TimeOffForm:
		// Time-off entries are immutable; delete and recreate instead
		return
	}

	fs.Form = m.buildPlanForm(kind)
}
