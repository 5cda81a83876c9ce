package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/tui/state"
)

// handleSearchMode handles vim-style incremental search input.
// Enter applies the filter, ESC abandons it. The query only highlights
// matching rows; it never removes rows from the timeline or board.
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchState.Activate()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case "esc":
		m.searchState.Clear()
		m.searchState.Deactivate()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case "backspace":
		m.searchState.Backspace()
		return m, nil

	case "space", " ":
		// Space arrives as a named key, not a printable rune; without
		// this multi-word titles can't be matched.
		m.searchState.AppendChar(' ')
		return m, nil
	}

	// Append printable characters to the query
	if runes := []rune(msg.String()); len(runes) == 1 {
		m.searchState.AppendChar(runes[0])
	}
	return m, nil
}
