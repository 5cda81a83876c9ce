package components

import (
	"strings"
	"testing"

	"github.com/kamholtz/trak/internal/config"
	"github.com/kamholtz/trak/internal/dashboard"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
	"github.com/kamholtz/trak/internal/tui/theme"
)

func initTheme(t *testing.T) {
	t.Helper()
	theme.Init(config.DefaultColorScheme())
	InitStyles()
}

func TestRenderGanttPaintsEveryRow(t *testing.T) {
	initTheme(t)

	tasks := []*models.Task{
		{ID: 1, Title: "write parser", StartDate: "2025-02-01", EndDate: "2025-02-03"},
		{ID: 2, Title: "single day", DueDate: "2025-02-02"},
	}
	tl, err := timeline.Layout(tasks, timeline.ZoomWeek)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	out := RenderGantt(GanttProps{Timeline: tl, Width: 80})

	if !strings.Contains(out, "█") {
		t.Error("expected at least one bar cell in output")
	}
	for _, title := range []string{"write parser", "single day"} {
		if !strings.Contains(out, title) {
			t.Errorf("expected row label %q in output", title)
		}
	}
}

func TestRenderGanttEmptyTimeline(t *testing.T) {
	initTheme(t)

	out := RenderGantt(GanttProps{Timeline: nil, Width: 80})
	if !strings.Contains(out, "No dated tasks") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderBoardColumnEmptyState(t *testing.T) {
	initTheme(t)

	out := RenderBoardColumn(ColumnProps{
		Status:          models.StatusBlocked,
		Width:           24,
		Height:          20,
		SelectedTaskIdx: -1,
	})

	if !strings.Contains(out, "blocked (0)") {
		t.Errorf("expected header with zero count, got %q", out)
	}
	if !strings.Contains(out, "No tasks") {
		t.Error("expected empty-state message")
	}
}

func TestRenderBoardColumnCounts(t *testing.T) {
	initTheme(t)

	tasks := []*models.Task{
		{ID: 1, Title: "a", Priority: "high"},
		{ID: 2, Title: "b", Priority: "low", DueDate: "2025-03-01"},
	}
	out := RenderBoardColumn(ColumnProps{
		Status:          models.StatusTodo,
		Tasks:           tasks,
		Width:           30,
		Height:          30,
		SelectedTaskIdx: -1,
	})

	if !strings.Contains(out, "to-do (2)") {
		t.Errorf("expected header with count 2, got %q", out)
	}
	if !strings.Contains(out, "due 2025-03-01") {
		t.Error("expected due date on card metadata")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long task title", 10); len([]rune(got)) != 10 {
		t.Errorf("truncated length = %d, want 10", len([]rune(got)))
	}
}

func TestRenderDashboardIncludesWeeklyGantt(t *testing.T) {
	initTheme(t)

	tasks := []*models.Task{
		{ID: 1, Title: "ship release", Status: models.StatusInProgress, DueDate: "2025-06-04"},
	}
	weekStart, _ := timeline.ParseDay("2025-06-02")
	weekEnd, _ := timeline.ParseDay("2025-06-08")
	p := dashboard.Project(tasks, nil, weekStart, weekEnd)

	out := RenderDashboard(DashboardProps{Projection: p, Width: 100})

	if !strings.Contains(out, "This week") {
		t.Error("expected the weekly mini-timeline panel header")
	}
	if !strings.Contains(out, "ship release") {
		t.Error("expected the due task's label on the mini-timeline")
	}
	if !strings.Contains(out, "█") {
		t.Error("expected at least one bar cell on the mini-timeline")
	}
}

func TestRenderDashboardWeekPanelEmptyState(t *testing.T) {
	initTheme(t)

	weekStart, _ := timeline.ParseDay("2025-06-02")
	weekEnd, _ := timeline.ParseDay("2025-06-08")
	p := dashboard.Project(nil, nil, weekStart, weekEnd)

	out := RenderDashboard(DashboardProps{Projection: p, Width: 100})

	if !strings.Contains(out, "No dated tasks this week") {
		t.Error("expected the empty-week placeholder")
	}
}
