package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kamholtz/trak/internal/dashboard"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

type DashboardProps struct {
	Projection *dashboard.Projection
	Width      int
}

// RenderDashboard renders the current-week summary: task load by status,
// tasks due this week, open issues and risks due for review.
func RenderDashboard(props DashboardProps) string {
	p := props.Projection
	if p == nil {
		return SubtleStyle.Italic(true).Render("Nothing to summarize")
	}

	panelWidth := max(props.Width/2-2, 30)

	header := TitleStyle.Render(fmt.Sprintf("Week of %s - %s",
		timeline.FormatDay(p.WeekStart), timeline.FormatDay(p.WeekEnd)))

	load := renderLoadPanel(p, panelWidth)
	due := renderDuePanel(p.DueThisWeek, panelWidth)
	issues := renderIssuesPanel(p.OpenIssues, panelWidth)
	risks := renderRisksPanel(p.RisksDue, panelWidth)

	top := lipgloss.JoinHorizontal(lipgloss.Top, load, " ", due)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, issues, " ", risks)
	week := renderWeekPanel(p, panelWidth*2+1)

	return header + "\n\n" + top + "\n" + bottom + "\n" + week
}

// renderWeekPanel renders the compact mini-Gantt of tasks due this week,
// one bar per task over the fixed week window.
func renderWeekPanel(p *dashboard.Projection, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("This week"))
	b.WriteString("\n")

	rows := p.WeeklyRows()
	if len(rows) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No dated tasks this week"))
		return PanelStyle.Width(width).Render(b.String())
	}

	const labelWidth = 16
	barArea := width - labelWidth - 5
	if barArea < 10 {
		barArea = 10
	}
	for _, row := range rows {
		b.WriteString(SubtleStyle.Width(labelWidth).Render(truncate(row.Task.Title, labelWidth)))
		b.WriteString(" ")
		b.WriteString(renderBar(row, barArea))
		b.WriteString("\n")
	}
	return PanelStyle.Width(width).Render(b.String())
}

func renderLoadPanel(p *dashboard.Projection, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Task load"))
	b.WriteString("\n")
	for _, status := range models.Statuses() {
		count := p.TaskLoad[status]
		bar := strings.Repeat("■", min(count, width-20))
		b.WriteString(fmt.Sprintf("%-12s %3d %s\n", status, count, GanttBarStyle.Render(bar)))
	}
	if p.DependencyCount > 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d dependency links", p.DependencyCount)))
	}
	return PanelStyle.Width(width).Render(b.String())
}

func renderDuePanel(tasks []*models.Task, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Due this week"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("Nothing due"))
	}
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%s  %s\n", t.EffectiveDueDate(), truncate(t.Title, width-14)))
	}
	return PanelStyle.Width(width).Render(b.String())
}

func renderIssuesPanel(tasks []*models.Task, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Open issues"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No open issues"))
	}
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("%-8s %s\n", t.Priority, truncate(t.Title, width-12)))
	}
	return PanelStyle.Width(width).Render(b.String())
}

func renderRisksPanel(risks []*models.Risk, width int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Risks due for review"))
	b.WriteString("\n")
	if len(risks) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No reviews pending"))
	}
	for _, r := range risks {
		b.WriteString(fmt.Sprintf("%s  %s\n", r.ReviewDate, truncate(r.Title, width-14)))
	}
	return PanelStyle.Width(width).Render(b.String())
}
