package state

import "github.com/kamholtz/trak/internal/timeline"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Vim-style search mode (/)
	FormMode                      // Record form with huh
	DeleteConfirmMode             // Confirming record deletion
	DetailMode                    // Read-only record detail overlay
	HelpMode                      // Displaying help screen
)

// View identifies the active dashboard tab.
type View int

const (
	DashboardView View = iota
	BoardView
	TimelineView
	RiskView
	PlanView
)

// viewOrder fixes the tab cycle.
var viewOrder = []View{DashboardView, BoardView, TimelineView, RiskView, PlanView}

// BoardLayout selects how the backlog view renders its tasks.
type BoardLayout int

const (
	KanbanLayout BoardLayout = iota // Status columns side by side
	ListLayout                      // Flat ordered list
)

// Title returns the tab label for the view.
func (v View) Title() string {
	switch v {
	case DashboardView:
		return "Dashboard"
	case BoardView:
		return "Board"
	case TimelineView:
		return "Timeline"
	case RiskView:
		return "Risks"
	case PlanView:
		return "Plan"
	default:
		return "Unknown"
	}
}

// ViewTitles returns tab labels in display order.
func ViewTitles() []string {
	titles := make([]string, len(viewOrder))
	for i, v := range viewOrder {
		titles[i] = v.Title()
	}
	return titles
}

// UIState manages the user interface state.
// This includes navigation (column/row selection), the active view tab,
// terminal dimensions, timeline zoom, and the current interaction mode.
type UIState struct {
	// view is the active tab
	view View

	// selectedColumn is the index of the selected kanban column
	selectedColumn int

	// selectedRow is the index of the selected row within the active view
	selectedRow int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// zoom is the timeline display density
	zoom timeline.Zoom

	// boardLayout toggles the backlog between kanban and list rendering
	boardLayout BoardLayout
}

// NewUIState creates a new UIState with default values.
func NewUIState(zoom timeline.Zoom) *UIState {
	return &UIState{
		view: DashboardView,
		mode: NormalMode,
		zoom: zoom,
	}
}

// View returns the active view tab.
func (s *UIState) View() View {
	return s.view
}

// ViewIndex returns the position of the active view in the tab order.
func (s *UIState) ViewIndex() int {
	for i, v := range viewOrder {
		if v == s.view {
			return i
		}
	}
	return 0
}

// NextView advances to the next tab, wrapping around.
func (s *UIState) NextView() {
	s.view = viewOrder[(s.ViewIndex()+1)%len(viewOrder)]
	s.ResetSelection()
}

// PrevView moves to the previous tab, wrapping around.
func (s *UIState) PrevView() {
	s.view = viewOrder[(s.ViewIndex()+len(viewOrder)-1)%len(viewOrder)]
	s.ResetSelection()
}

// SelectedColumn returns the index of the selected kanban column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected kanban column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedRow returns the index of the selected row.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the selected row index.
func (s *UIState) SetSelectedRow(index int) {
	s.selectedRow = index
}

// ResetSelection resets column and row selection to the origin.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedRow = 0
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// BoardLayout returns the current backlog rendering layout.
func (s *UIState) BoardLayout() BoardLayout {
	return s.boardLayout
}

// ToggleBoardLayout flips the backlog between kanban and list rendering.
// Selection resets because the two layouts address tasks differently.
func (s *UIState) ToggleBoardLayout() {
	if s.boardLayout == KanbanLayout {
		s.boardLayout = ListLayout
	} else {
		s.boardLayout = KanbanLayout
	}
	s.ResetSelection()
}

// Zoom returns the timeline display density.
func (s *UIState) Zoom() timeline.Zoom {
	return s.zoom
}

// ZoomIn moves toward a denser tick scale (month -> week -> day).
func (s *UIState) ZoomIn() {
	switch s.zoom {
	case timeline.ZoomMonth:
		s.zoom = timeline.ZoomWeek
	case timeline.ZoomWeek:
		s.zoom = timeline.ZoomDay
	}
}

// ZoomOut moves toward a sparser tick scale (day -> week -> month).
func (s *UIState) ZoomOut() {
	switch s.zoom {
	case timeline.ZoomDay:
		s.zoom = timeline.ZoomWeek
	case timeline.ZoomWeek:
		s.zoom = timeline.ZoomMonth
	}
}
