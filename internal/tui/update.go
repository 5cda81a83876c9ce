package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	// Forms need ALL messages, not just key presses
	if m.uiState.Mode() == state.FormMode {
		return m.handleFormMode(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(msg)
	case state.DetailMode:
		// Any key closes the detail overlay
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return m, nil
}
