package timeline

// Tick is an axis label position for the presentation layer.
type Tick struct {
	Left  float64
	Label string
}

// stepDays returns the label interval for a zoom level.
func (z Zoom) stepDays() int {
	switch z {
	case ZoomWeek:
		return 7
	case ZoomMonth:
		return 30
	default:
		return 1
	}
}

// labelLayout returns the date format used for tick labels at a zoom level.
func (z Zoom) labelLayout() string {
	switch z {
	case ZoomMonth:
		return "Jan"
	default:
		return "Jan 02"
	}
}

// Ticks derives axis labels at the timeline's zoom density. Ticks never
// change bar placement; they only control how crowded the axis looks.
func (t *Timeline) Ticks() []Tick {
	step := t.Zoom.stepDays()
	layout := t.Zoom.labelLayout()

	var ticks []Tick
	for day := 0; day < t.SpanDays; day += step {
		ticks = append(ticks, Tick{
			Left:  float64(day) / float64(t.SpanDays),
			Label: t.AxisStart.AddDate(0, 0, day).Format(layout),
		})
	}
	return ticks
}
