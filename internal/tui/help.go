package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kamholtz/trak/internal/tui/state"
)

// handleHelpMode closes the help screen on any key.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// helpContent is the static help screen body.
const helpContent = `TRAK - Keyboard Shortcuts

VIEWS
  tab        Next view
  shift+tab  Previous view

RECORDS
  a     Add record for the current view
  e     Edit selected record
  d     Delete selected record (with confirmation)
  space View record details (any key closes)

BOARD
  v     Toggle kanban / list layout
  h/l   Move between columns
  j/k   Move between cards
  H     Move card to previous status
  L     Move card to next status

TIMELINE
  +     Zoom in  (month -> week -> day)
  -     Zoom out (day -> week -> month)
  j/k   Move between rows

SEARCH
  /     Start search (highlights matches)
  esc   Clear the active filter

OTHER
  r     Refresh from the database
  ?     Show this help screen
  q     Quit application

Press any key to close`
