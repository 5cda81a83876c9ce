package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width     int
	View      string
	TaskCount int
	Query     string
	Searching bool
}

// RenderStatusBar renders a status bar with left and right aligned text.
// Left side: view name and task count. Right side: search query or help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf(" trak · %s · %d tasks", props.View, props.TaskCount)

	rightText := "press ? for help "
	if props.Searching {
		rightText = fmt.Sprintf("/%s█ ", props.Query)
	} else if props.Query != "" {
		rightText = fmt.Sprintf("filter: %s ", props.Query)
	}

	gapWidth := props.Width - lipgloss.Width(leftText) - lipgloss.Width(rightText)
	if gapWidth < 1 {
		gapWidth = 1
	}

	bar := leftText + strings.Repeat(" ", gapWidth) + rightText
	return StatusBarStyle.Width(props.Width).Render(bar)
}
