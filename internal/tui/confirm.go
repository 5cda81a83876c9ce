package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/tui/state"
)

// handleDeleteConfirm handles the y/n prompt for record deletion.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelected()
		m.uiState.SetMode(state.NormalMode)
		m.reload()
		m.clampSelection()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// deleteSelected removes the selected record through its service.
func (m *Model) deleteSelected() {
	switch m.uiState.View() {
	case state.BoardView, state.TimelineView:
		t := m.selectedTask()
		if t == nil {
			return
		}
		if err := m.app.TaskService.DeleteTask(m.ctx, t.ID); err != nil {
			m.notificationState.Add(state.LevelError, fmt.Sprintf("Delete failed: %v", err))
		}
	case state.RiskView:
		r := m.selectedRisk()
		if r == nil {
			return
		}
		if err := m.app.RiskService.DeleteRisk(m.ctx, r.ID); err != nil {
			m.notificationState.Add(state.LevelError, fmt.Sprintf("Delete failed: %v", err))
		}
	case state.PlanView:
		m.deleteSelectedPlanRecord()
	}
}

func (m *Model) deleteSelectedPlanRecord() {
	kind, idx := m.planRowKind()
	var err error
	switch kind {
	case state.PIForm:
		if idx < len(m.appState.PIs()) {
			err = m.app.PlanService.DeletePI(m.ctx, m.appState.PIs()[idx].ID)
		}
	case state.SprintForm:
		if idx < len(m.appState.Sprints()) {
			err = m.app.PlanService.DeleteSprint(m.ctx, m.appState.Sprints()[idx].ID)
		}
	case state.TimeOffForm:
		if idx < len(m.appState.TimeOff()) {
			err = m.app.PlanService.DeleteTimeOff(m.ctx, m.appState.TimeOff()[idx].ID)
		}
	}
	if err != nil {
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Delete failed: %v", err))
	}
}
