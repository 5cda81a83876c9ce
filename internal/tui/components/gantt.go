package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kamholtz/trak/internal/timeline"
)

// titleColWidth is the fixed width of the task label column to the left
// of the bar area.
const titleColWidth = 24

type GanttProps struct {
	Timeline    *timeline.Timeline
	Width       int
	SelectedRow int
}

// RenderGantt renders the timeline as horizontal bars over a shared axis.
// Fractional offsets from the layout are mapped to terminal cells here;
// a bar always paints at least one cell. Bars that extend past the axis
// end are clipped at the right edge.
func RenderGantt(props GanttProps) string {
	tl := props.Timeline
	if tl == nil || len(tl.Rows) == 0 {
		return SubtleStyle.Italic(true).Render("No dated tasks to plot")
	}

	barArea := props.Width - titleColWidth - 1
	if barArea < 10 {
		barArea = 10
	}

	var b strings.Builder
	for i, row := range tl.Rows {
		title := truncate(fmt.Sprintf("#%d %s", row.Task.ID, row.Task.Title), titleColWidth)

		titleStyle := SubtleStyle
		if i == props.SelectedRow {
			titleStyle = TitleStyle
		}

		b.WriteString(titleStyle.Width(titleColWidth).Render(title))
		b.WriteString(" ")
		b.WriteString(renderBar(row, barArea))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", titleColWidth+1))
	b.WriteString(renderAxis(tl, barArea))

	return b.String()
}

// renderBar maps a row's fractional left/width onto barArea cells.
func renderBar(row timeline.Row, barArea int) string {
	start := int(row.Left * float64(barArea))
	length := int(row.Width * float64(barArea))
	if length < 1 {
		length = 1
	}
	if start >= barArea {
		start = barArea - 1
	}
	if start+length > barArea {
		length = barArea - start
	}

	style := GanttBarStyle
	if row.Matched {
		style = GanttMatchedStyle
	}

	return strings.Repeat(" ", start) + style.Render(strings.Repeat("█", length))
}

// renderAxis renders tick marks and labels underneath the bar area.
func renderAxis(tl *timeline.Timeline, barArea int) string {
	cells := make([]string, barArea)
	for i := range cells {
		cells[i] = "─"
	}

	line := AxisStyle.Render(strings.Join(cells, ""))

	var labels strings.Builder
	last := -1
	for _, tick := range tl.Ticks() {
		col := int(tick.Left * float64(barArea))
		if col >= barArea || col <= last {
			continue
		}
		pad := col - labels.Len()
		if pad < 0 {
			continue
		}
		labels.WriteString(strings.Repeat(" ", pad))
		labels.WriteString(tick.Label)
		last = col + len(tick.Label)
	}

	return line + "\n" + strings.Repeat(" ", titleColWidth+1) + AxisStyle.Render(labels.String())
}

// truncate shortens s to fit in width cells, appending an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 2 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
