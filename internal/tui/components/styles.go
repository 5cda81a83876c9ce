// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/kamholtz/trak/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle defines the appearance of the selected column
	SelectedColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual task cards
	CardStyle lipgloss.Style

	// SelectedCardStyle defines the appearance of the selected task card
	SelectedCardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, panel headers)
	TitleStyle lipgloss.Style

	// SubtleStyle defines muted text (empty states, hints)
	SubtleStyle lipgloss.Style

	// MatchedStyle highlights search matches
	MatchedStyle lipgloss.Style

	// GanttBarStyle defines the appearance of timeline bars
	GanttBarStyle lipgloss.Style

	// GanttMatchedStyle defines timeline bars whose task matches the search
	GanttMatchedStyle lipgloss.Style

	// AxisStyle defines the timeline axis and tick labels
	AxisStyle lipgloss.Style

	// PanelStyle defines dashboard panels
	PanelStyle lipgloss.Style

	// FormBoxStyle defines the base style for record forms (purple border)
	FormBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for the help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// StatusBarStyle defines the bottom status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all style variables from the current theme.
// Must be called after theme.Init and again if the theme changes.
func InitStyles() {
	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.
		Border(activeTabBorder, true).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Background(lipgloss.Color(theme.ColumnBg)).
		Padding(0, 1)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TaskBorder)).
		Background(lipgloss.Color(theme.TaskBg)).
		Padding(0, 1)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	TitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Title)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	MatchedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GanttMatched)).
		Bold(true)

	GanttBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GanttBar))

	GanttMatchedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GanttMatched)).
		Bold(true)

	AxisStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.AxisTick))

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Delete)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Foreground(lipgloss.Color(theme.StatusBarText))
}
