package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	key := msg.String()
	km := m.cfg.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	case km.NextView:
		m.uiState.NextView()
		return m, nil
	case km.PrevView:
		m.uiState.PrevView()
		return m, nil
	case km.ToggleLayout:
		if m.uiState.View() == state.BoardView {
			m.uiState.ToggleBoardLayout()
		}
		return m, nil
	case km.Refresh:
		m.reload()
		m.clampSelection()
		return m, nil
	case km.StartSearch:
		m.uiState.SetMode(state.SearchMode)
		return m, nil
	case km.ClearSearch:
		m.searchState.Clear()
		m.searchState.Deactivate()
		return m, nil
	case km.AddRecord:
		return m.handleAddRecord()
	case km.EditRecord:
		return m.handleEditRecord()
	case km.ViewRecord:
		return m.handleViewRecord()
	case km.DeleteRecord:
		return m.handleDeleteRecord()
	case km.PrevRow, "up":
		return m.handleNavigateUp()
	case km.NextRow, "down":
		return m.handleNavigateDown()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.MoveTaskLeft:
		return m.handleMoveTask(-1)
	case km.MoveTaskRight:
		return m.handleMoveTask(+1)
	case km.ZoomIn:
		if m.uiState.View() == state.TimelineView {
			m.uiState.ZoomIn()
		}
		return m, nil
	case km.ZoomOut:
		if m.uiState.View() == state.TimelineView {
			m.uiState.ZoomOut()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedRow() > 0 {
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() - 1)
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.uiState.SelectedRow() < m.rowCount()-1 {
		m.uiState.SetSelectedRow(m.uiState.SelectedRow() + 1)
	}
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.uiState.View() != state.BoardView || m.uiState.BoardLayout() != state.KanbanLayout {
		return m, nil
	}
	if m.uiState.SelectedColumn() > 0 {
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn() - 1)
		m.uiState.SetSelectedRow(0)
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.uiState.View() != state.BoardView || m.uiState.BoardLayout() != state.KanbanLayout {
		return m, nil
	}
	if m.uiState.SelectedColumn() < len(models.Statuses())-1 {
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn() + 1)
		m.uiState.SetSelectedRow(0)
	}
	return m, nil
}

// handleMoveTask moves the selected board task one column left or right.
// The write goes through the service; the board is rebuilt from a fresh
// fetch so the card lands in exactly its new column.
func (m Model) handleMoveTask(direction int) (tea.Model, tea.Cmd) {
	if m.uiState.View() != state.BoardView {
		return m, nil
	}
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}

	statuses := models.Statuses()
	source := m.uiState.SelectedColumn()
	if m.uiState.BoardLayout() == state.ListLayout {
		// The list has no column cursor; the source is the task's own status.
		source = statusIndex(task.Status)
		if source < 0 {
			return m, nil
		}
	}
	target := source + direction
	if target < 0 || target >= len(statuses) {
		return m, nil
	}

	if err := m.app.TaskService.MoveToStatus(m.ctx, task.ID, statuses[target]); err != nil {
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Move failed: %v", err))
		return m, nil
	}

	m.reload()
	if m.uiState.BoardLayout() == state.KanbanLayout {
		m.uiState.SetSelectedColumn(target)
		m.uiState.SetSelectedRow(len(m.currentBoardColumn()) - 1)
	} else {
		m.clampSelection()
	}
	return m, nil
}

// statusIndex returns the column position of a status, -1 when the status
// is outside the closed set.
func statusIndex(s models.Status) int {
	for i, known := range models.Statuses() {
		if known == s {
			return i
		}
	}
	return -1
}

// handleViewRecord opens the read-only detail overlay for the selected
// task or risk.
func (m Model) handleViewRecord() (tea.Model, tea.Cmd) {
	if m.selectedTask() != nil || m.selectedRisk() != nil {
		m.uiState.SetMode(state.DetailMode)
	}
	return m, nil
}

func (m Model) handleDeleteRecord() (tea.Model, tea.Cmd) {
	switch m.uiState.View() {
	case state.BoardView, state.TimelineView:
		if m.selectedTask() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	case state.RiskView:
		if m.selectedRisk() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	case state.PlanView:
		if m.rowCount() > 0 {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
	}
	return m, nil
}
