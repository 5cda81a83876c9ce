package dashboard

import (
	"testing"
	"time"

	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

func window(t *testing.T, start, end string) (time.Time, time.Time) {
	t.Helper()
	s, ok := timeline.ParseDay(start)
	if !ok {
		t.Fatalf("Failed to parse %q", start)
	}
	e, ok := timeline.ParseDay(end)
	if !ok {
		t.Fatalf("Failed to parse %q", end)
	}
	return s, e
}

func TestProject_DueThisWeekAscending(t *testing.T) {
	// Scenario: due dates Jan 1-3 inside a Jan 1-7 window all appear, in
	// ascending date order.
	tasks := []*models.Task{
		{ID: 3, Title: "third", Status: models.StatusTodo, DueDate: "2024-01-03"},
		{ID: 1, Title: "first", Status: models.StatusTodo, DueDate: "2024-01-01"},
		{ID: 2, Title: "second", Status: models.StatusTodo, DueDate: "2024-01-02"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)

	if len(p.DueThisWeek) != 3 {
		t.Fatalf("Expected 3 due tasks, got %d", len(p.DueThisWeek))
	}
	for i, want := range []int{1, 2, 3} {
		if p.DueThisWeek[i].ID != want {
			t.Errorf("Position %d: expected task %d, got %d", i, want, p.DueThisWeek[i].ID)
		}
	}
}

func TestProject_DueWindowInclusiveAndBounded(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "before", Status: models.StatusTodo, DueDate: "2023-12-31"},
		{ID: 2, Title: "window start", Status: models.StatusTodo, DueDate: "2024-01-01"},
		{ID: 3, Title: "window end", Status: models.StatusTodo, DueDate: "2024-01-07"},
		{ID: 4, Title: "after", Status: models.StatusTodo, DueDate: "2024-01-08"},
		{ID: 5, Title: "undated", Status: models.StatusTodo},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)

	if len(p.DueThisWeek) != 2 {
		t.Fatalf("Expected 2 due tasks, got %d", len(p.DueThisWeek))
	}
	if p.DueThisWeek[0].ID != 2 || p.DueThisWeek[1].ID != 3 {
		t.Errorf("Expected window-edge tasks 2 and 3, got %d and %d",
			p.DueThisWeek[0].ID, p.DueThisWeek[1].ID)
	}
}

func TestProject_PlannedEndFallbackForDue(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "planned only", Status: models.StatusTodo, PlannedEndDate: "2024-01-03"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)
	if len(p.DueThisWeek) != 1 {
		t.Errorf("Expected planned end date to count as due date, got %d tasks", len(p.DueThisWeek))
	}
}

func TestProject_TaskLoadZeroFilled(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "a", Status: models.StatusTodo},
		{ID: 2, Title: "b", Status: models.StatusTodo},
		{ID: 3, Title: "c", Status: models.StatusDone},
		{ID: 4, Title: "stray", Status: "archived"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)

	if len(p.TaskLoad) != 6 {
		t.Fatalf("Expected all 6 buckets present, got %d", len(p.TaskLoad))
	}
	if p.TaskLoad[models.StatusTodo] != 2 {
		t.Errorf("Expected 2 to-do tasks, got %d", p.TaskLoad[models.StatusTodo])
	}
	if p.TaskLoad[models.StatusBacklog] != 0 {
		t.Errorf("Expected zero-filled backlog bucket, got %d", p.TaskLoad[models.StatusBacklog])
	}
	// The unknown-status task must not inflate any bucket.
	total := 0
	for _, n := range p.TaskLoad {
		total += n
	}
	if total != 3 {
		t.Errorf("Expected 3 counted tasks, got %d", total)
	}
}

func TestProject_OpenIssuesByPriority(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "done bug", Status: models.StatusDone, Type: "bug", Priority: "critical"},
		{ID: 2, Title: "low bug", Status: models.StatusTodo, Type: "bug", Priority: "low"},
		{ID: 3, Title: "not a bug", Status: models.StatusTodo, Type: "task", Priority: "critical"},
		{ID: 4, Title: "high bug", Status: models.StatusBlocked, Type: "bug", Priority: "high"},
		{ID: 5, Title: "another low bug", Status: models.StatusBacklog, Type: "bug", Priority: "low"},
		{ID: 6, Title: "cancelled bug", Status: models.StatusCancelled, Type: "bug", Priority: "high"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)

	want := []int{4, 2, 5} // high first, then the two lows in input order
	if len(p.OpenIssues) != len(want) {
		t.Fatalf("Expected %d open issues, got %d", len(want), len(p.OpenIssues))
	}
	for i, id := range want {
		if p.OpenIssues[i].ID != id {
			t.Errorf("Position %d: expected task %d, got %d", i, id, p.OpenIssues[i].ID)
		}
	}
}

func TestProject_RisksDueAscending(t *testing.T) {
	risks := []*models.Risk{
		{ID: 1, Title: "late review", ReviewDate: "2024-01-06"},
		{ID: 2, Title: "early review", ReviewDate: "2024-01-02"},
		{ID: 3, Title: "out of window", ReviewDate: "2024-02-01"},
		{ID: 4, Title: "no review date"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(nil, risks, start, end)

	if len(p.RisksDue) != 2 {
		t.Fatalf("Expected 2 risks due, got %d", len(p.RisksDue))
	}
	if p.RisksDue[0].ID != 2 || p.RisksDue[1].ID != 1 {
		t.Errorf("Expected risks ordered by review date, got %d then %d",
			p.RisksDue[0].ID, p.RisksDue[1].ID)
	}
}

func TestProject_DependencyCount(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "a", Status: models.StatusTodo, Dependencies: []int{2, 3}},
		{ID: 2, Title: "b", Status: models.StatusTodo, Dependencies: []int{1}},
		{ID: 3, Title: "c", Status: models.StatusTodo},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	p := Project(tasks, nil, start, end)
	if p.DependencyCount != 3 {
		t.Errorf("Expected dependency count 3, got %d", p.DependencyCount)
	}
}

func TestProject_WeeklyRowsFeedCompactTimeline(t *testing.T) {
	tasks := []*models.Task{
		{ID: 1, Title: "midweek", Status: models.StatusTodo, DueDate: "2024-01-04"},
	}
	start, end := window(t, "2024-01-01", "2024-01-07")

	rows := Project(tasks, nil, start, end).WeeklyRows()
	if len(rows) != 1 {
		t.Fatalf("Expected 1 weekly row, got %d", len(rows))
	}
	if rows[0].Left <= 0 {
		t.Errorf("Expected positive offset for midweek task, got %f", rows[0].Left)
	}
}

func TestCurrentWeek_MondayStart(t *testing.T) {
	tests := []struct {
		name  string
		today string
		start string
		end   string
	}{
		{"wednesday", "2024-01-03", "2024-01-01", "2024-01-07"},
		{"monday", "2024-01-01", "2024-01-01", "2024-01-07"},
		{"sunday", "2024-01-07", "2024-01-01", "2024-01-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today, _ := timeline.ParseDay(tt.today)
			start, end := CurrentWeek(today)
			if timeline.FormatDay(start) != tt.start {
				t.Errorf("Week start = %s, want %s", timeline.FormatDay(start), tt.start)
			}
			if timeline.FormatDay(end) != tt.end {
				t.Errorf("Week end = %s, want %s", timeline.FormatDay(end), tt.end)
			}
		})
	}
}

func TestWeekStartingOn_Sunday(t *testing.T) {
	tests := []struct {
		name  string
		today string
		start string
		end   string
	}{
		{"wednesday", "2024-01-03", "2023-12-31", "2024-01-06"},
		{"sunday", "2023-12-31", "2023-12-31", "2024-01-06"},
		{"saturday", "2024-01-06", "2023-12-31", "2024-01-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today, _ := timeline.ParseDay(tt.today)
			start, end := WeekStartingOn(today, time.Sunday)
			if timeline.FormatDay(start) != tt.start {
				t.Errorf("Week start = %s, want %s", timeline.FormatDay(start), tt.start)
			}
			if timeline.FormatDay(end) != tt.end {
				t.Errorf("Week end = %s, want %s", timeline.FormatDay(end), tt.end)
			}
		})
	}
}
