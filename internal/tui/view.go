package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/tui/components"
	"github.com/kamholtz/trak/internal/tui/theme"
	"github.com/kamholtz/trak/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderBase()

	switch m.uiState.Mode() {
	case state.FormMode:
		view.Content = m.renderModal(components.FormBoxStyle, m.renderForm())
	case state.DeleteConfirmMode:
		view.Content = m.renderModal(components.DeleteConfirmBoxStyle, m.renderDeleteConfirm())
	case state.DetailMode:
		view.Content = m.renderModal(components.PanelStyle, m.renderDetail())
	case state.HelpMode:
		view.Content = m.renderModal(components.HelpBoxStyle, helpContent)
	default:
		view.Content = base
	}

	return view
}

// renderBase composes tabs, the active view body and the status bar.
func (m Model) renderBase() string {
	width := m.uiState.Width()
	height := m.uiState.Height()

	notification := ""
	if m.notificationState.HasAny() {
		notification = m.renderNotification()
	}
	tabs := components.RenderTabs(state.ViewTitles(), m.uiState.ViewIndex(), width, notification)

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:     width,
		View:      m.uiState.View().Title(),
		TaskCount: m.appState.TaskCount(),
		Query:     m.searchState.Query,
		Searching: m.uiState.Mode() == state.SearchMode,
	})

	bodyHeight := height - lipgloss.Height(tabs) - lipgloss.Height(statusBar)

	var body string
	switch m.uiState.View() {
	case state.DashboardView:
		body = m.viewDashboard()
	case state.BoardView:
		body = m.viewBoard(bodyHeight)
	case state.TimelineView:
		body = m.viewTimeline()
	case state.RiskView:
		body = m.viewRisks()
	case state.PlanView:
		body = m.viewPlan()
	}

	body = lipgloss.NewStyle().Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, statusBar)
}

func (m Model) viewDashboard() string {
	return components.RenderDashboard(components.DashboardProps{
		Projection: m.currentProjection(),
		Width:      m.uiState.Width(),
	})
}

func (m Model) viewBoard(height int) string {
	query := ""
	if m.searchState.IsActive || m.uiState.Mode() == state.SearchMode {
		query = m.searchState.Query
	}

	if m.uiState.BoardLayout() == state.ListLayout {
		return m.viewBacklogList(query)
	}

	statuses := models.Statuses()
	colWidth := max(m.uiState.Width()/len(statuses)-1, 16)

	b := m.appState.Board()
	cols := make([]string, 0, len(statuses))
	for i, status := range statuses {
		selectedIdx := -1
		if i == m.uiState.SelectedColumn() {
			selectedIdx = m.uiState.SelectedRow()
		}
		cols = append(cols, components.RenderBoardColumn(components.ColumnProps{
			Status:          status,
			Tasks:           b.Tasks(status),
			Width:           colWidth,
			Height:          height - 1,
			Selected:        i == m.uiState.SelectedColumn(),
			SelectedTaskIdx: selectedIdx,
			Query:           query,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// viewBacklogList renders every task as one flat row, the board's list
// layout. Same records, no column grouping.
func (m Model) viewBacklogList(query string) string {
	tasks := m.appState.Tasks()
	if len(tasks) == 0 {
		return components.SubtleStyle.Italic(true).Render("No tasks yet")
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Backlog"))
	b.WriteString("\n\n")
	for i, t := range tasks {
		line := fmt.Sprintf("%-12s %-8s %-12s %s", t.Status, t.Priority, t.EffectiveDueDate(), t.Title)
		switch {
		case i == m.uiState.SelectedRow():
			line = components.MatchedStyle.Render("> " + line)
		case query != "" && strings.Contains(strings.ToLower(t.Title), strings.ToLower(query)):
			line = components.MatchedStyle.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewTimeline() string {
	return components.RenderGantt(components.GanttProps{
		Timeline:    m.currentTimeline(),
		Width:       m.uiState.Width(),
		SelectedRow: m.uiState.SelectedRow(),
	})
}

func (m Model) viewRisks() string {
	risks := m.appState.Risks()
	if len(risks) == 0 {
		return components.SubtleStyle.Italic(true).Render("No risks registered")
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Risk register"))
	b.WriteString("\n\n")
	for i, r := range risks {
		line := fmt.Sprintf("%-8s %-8s %-12s %s", r.Impact, r.Status, r.ReviewDate, r.Title)
		if i == m.uiState.SelectedRow() {
			line = components.MatchedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewPlan() string {
	var b strings.Builder
	row := 0
	cursor := m.uiState.SelectedRow()

	writeLine := func(line string) {
		if row == cursor {
			b.WriteString(components.MatchedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		row++
	}

	b.WriteString(components.TitleStyle.Render("Program increments"))
	b.WriteString("\n")
	for _, pi := range m.appState.PIs() {
		writeLine(fmt.Sprintf("%-12s %s → %s", pi.Name, pi.StartDate, pi.EndDate))
	}

	b.WriteString("\n")
	b.WriteString(components.TitleStyle.Render("Sprints"))
	b.WriteString("\n")
	for _, s := range m.appState.Sprints() {
		writeLine(fmt.Sprintf("%-12s %s → %s", s.Name, s.StartDate, s.EndDate))
	}

	b.WriteString("\n")
	b.WriteString(components.TitleStyle.Render("Time off"))
	b.WriteString("\n")
	for _, t := range m.appState.TimeOff() {
		writeLine(fmt.Sprintf("%-12s %s %s", t.Date, t.Category, t.Note))
	}

	return b.String()
}

// renderForm renders the active huh form body.
func (m Model) renderForm() string {
	if m.formState.Form == nil {
		return ""
	}
	return m.formState.Form.View()
}

// renderDeleteConfirm renders the deletion confirmation prompt.
func (m Model) renderDeleteConfirm() string {
	name := "this record"
	if t := m.selectedTask(); t != nil {
		name = fmt.Sprintf("'%s'", t.Title)
	} else if r := m.selectedRisk(); r != nil {
		name = fmt.Sprintf("'%s'", r.Title)
	}
	return fmt.Sprintf("Delete %s?\n\n[y]es  [n]o", name)
}

// renderDetail renders the read-only record overlay. Descriptions are
// markdown and go through glamour.
func (m Model) renderDetail() string {
	width := min(m.uiState.Width()-8, 60)

	if t := m.selectedTask(); t != nil {
		var b strings.Builder
		b.WriteString(components.TitleStyle.Render(t.Title))
		b.WriteString("\n")
		b.WriteString(components.SubtleStyle.Render(
			fmt.Sprintf("%s · %s · %s", t.Status, t.Priority, t.Type)))
		b.WriteString("\n")
		if due := t.EffectiveDueDate(); due != "" {
			b.WriteString(components.SubtleStyle.Render("due " + due))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(components.RenderDescription(components.DescriptionProps{
			Description: t.Description,
			Width:       width,
		}))
		return b.String()
	}

	if r := m.selectedRisk(); r != nil {
		var b strings.Builder
		b.WriteString(components.TitleStyle.Render(r.Title))
		b.WriteString("\n")
		b.WriteString(components.SubtleStyle.Render(
			fmt.Sprintf("impact %s · probability %s · %s", r.Impact, r.Probability, r.Status)))
		b.WriteString("\n\n")
		b.WriteString(components.RenderDescription(components.DescriptionProps{
			Description: r.Description,
			Width:       width,
		}))
		if r.Mitigation != "" {
			b.WriteString("\n\n")
			b.WriteString(components.SubtleStyle.Render("Mitigation: " + r.Mitigation))
		}
		return b.String()
	}

	return ""
}

// renderModal centers content in a styled box over the screen.
func (m Model) renderModal(style lipgloss.Style, content string) string {
	box := style.Width(min(m.uiState.Width()-4, 64)).Render(content)
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// renderNotification renders the latest notification inline next to the tabs.
func (m Model) renderNotification() string {
	n := m.notificationState.Latest()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1)
	if n.Level == state.LevelError {
		style = style.
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Background(lipgloss.Color(theme.ErrorBg))
	}
	return style.Render(n.Message)
}
