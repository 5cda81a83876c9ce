package timeline

import (
	"errors"
	"strings"
	"time"

	"github.com/kamholtz/trak/internal/models"
)

// Zoom is a display-density hint for the rendered timeline. It changes the
// axis tick labels only; bar placement is identical for every zoom level.
type Zoom string

const (
	ZoomDay   Zoom = "day"
	ZoomWeek  Zoom = "week"
	ZoomMonth Zoom = "month"
)

// ErrNoDatedTasks is returned when no task in the snapshot carries any date
// field. The caller renders a placeholder instead of a timeline.
var ErrNoDatedTasks = errors.New("no tasks with any date field")

// axisPadDays keeps trailing bars readable instead of clipped at the right
// edge of a data-derived axis. The dashboard's weekly window is caller-fixed
// and deliberately gets no pad.
const axisPadDays = 7

// maxWeeklyRows bounds the dashboard mini-timeline's height.
const maxWeeklyRows = 8

// minWeeklyWidth keeps very short bars visible on the compact weekly
// timeline. This overrides pure proportional scaling in weekly mode only.
const minWeeklyWidth = 0.10

// Row is one positioned bar, ephemeral and recomputed on every layout call.
// Left and Width are fractions of the axis; Width may overflow the right
// edge when a task's end date exceeds the axis maximum.
type Row struct {
	Task     *models.Task
	Left     float64
	Width    float64
	TitleKey string
	Matched  bool
}

// Timeline is the positioned result of one layout pass over a snapshot.
type Timeline struct {
	AxisStart time.Time
	AxisEnd   time.Time
	SpanDays  int
	Zoom      Zoom
	Rows      []Row
}

// anchorDate picks the date that places a task on the axis:
// start date, then due date, then end date.
func anchorDate(t *models.Task) (time.Time, bool) {
	for _, s := range []string{t.StartDate, t.DueDate, t.EndDate} {
		if d, ok := ParseDay(s); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

// Layout positions every task in the snapshot on an axis derived from the
// tasks' own dates. Input order is preserved. Tasks with no usable date are
// excluded from the axis range but still emitted as a degenerate one-day bar
// at the axis start, so no task silently disappears from the view.
func Layout(tasks []*models.Task, zoom Zoom) (*Timeline, error) {
	var axisStart, axisMax time.Time
	dated := false
	for _, t := range tasks {
		anchor, ok := anchorDate(t)
		if !ok {
			continue
		}
		if !dated || anchor.Before(axisStart) {
			axisStart = anchor
		}
		if !dated || anchor.After(axisMax) {
			axisMax = anchor
		}
		dated = true
	}
	if !dated {
		return nil, ErrNoDatedTasks
	}

	axisEnd := axisMax.AddDate(0, 0, axisPadDays)
	span := DayOffset(axisEnd, axisStart)
	if span < 1 {
		span = 1
	}

	tl := &Timeline{
		AxisStart: axisStart,
		AxisEnd:   axisEnd,
		SpanDays:  span,
		Zoom:      zoom,
		Rows:      make([]Row, 0, len(tasks)),
	}

	for _, t := range tasks {
		start, ok := anchorDate(t)
		if !ok {
			start = axisStart
		}
		end := start
		for _, s := range []string{t.EndDate, t.DueDate} {
			if d, ok := ParseDay(s); ok {
				end = d
				break
			}
		}

		left := float64(DayOffset(start, axisStart)) / float64(span)
		if left < 0 {
			left = 0
		}
		width := float64(SpanDays(start, end)) / float64(span)

		tl.Rows = append(tl.Rows, Row{
			Task:     t,
			Left:     left,
			Width:    width,
			TitleKey: strings.ToLower(t.Title),
		})
	}

	return tl, nil
}

// WeeklyLayout positions tasks inside a caller-fixed week window for the
// dashboard mini-timeline. Bars anchor on the effective due date, the row
// count is capped, and every bar gets a minimum visible width.
func WeeklyLayout(tasks []*models.Task, weekStart, weekEnd time.Time) []Row {
	span := SpanDays(weekStart, weekEnd)

	n := len(tasks)
	if n > maxWeeklyRows {
		n = maxWeeklyRows
	}

	rows := make([]Row, 0, n)
	for _, t := range tasks[:n] {
		offset := 0
		if due, ok := ParseDay(t.EffectiveDueDate()); ok {
			offset = DayOffset(due, weekStart)
			if offset < 0 {
				offset = 0
			}
		}

		width := 1.0 / float64(span)
		if width < minWeeklyWidth {
			width = minWeeklyWidth
		}

		rows = append(rows, Row{
			Task:     t,
			Left:     float64(offset) / float64(span),
			Width:    width,
			TitleKey: strings.ToLower(t.Title),
		})
	}
	return rows
}
