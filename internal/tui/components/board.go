package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kamholtz/trak/internal/models"
)

// CardHeight is the fixed height of a rendered task card.
const CardHeight = 4

type ColumnProps struct {
	Status          models.Status
	Tasks           []*models.Task
	Width           int
	Height          int
	Selected        bool
	SelectedTaskIdx int // -1 when this column is not selected
	Query           string
}

// RenderBoardColumn renders one kanban column: a header with the status
// name and count, then task cards. When the column is taller than the
// available space, cards scroll around the selection.
func RenderBoardColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Status, len(props.Tasks))
	content := TitleStyle.Render(truncate(header, props.Width-4)) + "\n"

	if len(props.Tasks) == 0 {
		content += SubtleStyle.Italic(true).Render("No tasks")
	} else {
		maxVisible := max((props.Height-4)/CardHeight, 1)

		offset := 0
		if props.SelectedTaskIdx >= maxVisible {
			offset = props.SelectedTaskIdx - maxVisible + 1
		}

		if offset > 0 {
			content += SubtleStyle.Render("▲ more above") + "\n"
		}

		end := min(offset+maxVisible, len(props.Tasks))
		var cards []string
		for i := offset; i < end; i++ {
			cards = append(cards, renderCard(props.Tasks[i], props.Width-4, i == props.SelectedTaskIdx, props.Query))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + SubtleStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = SelectedColumnStyle
	}
	return style.Width(props.Width).Height(props.Height).Render(content)
}

// renderCard renders a single task card with title and metadata line.
func renderCard(task *models.Task, width int, selected bool, query string) string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	if query != "" && strings.Contains(strings.ToLower(task.Title), strings.ToLower(query)) {
		titleStyle = MatchedStyle
	}

	meta := task.Priority
	if due := task.EffectiveDueDate(); due != "" {
		meta += " · due " + due
	}

	body := titleStyle.Render(truncate(task.Title, width-2)) + "\n" +
		SubtleStyle.Render(truncate(meta, width-2))

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Width(width).Render(body)
}
