package timeline

import (
	"testing"

	"github.com/kamholtz/trak/internal/models"
)

func highlightRows(t *testing.T) []Row {
	t.Helper()
	tasks := []*models.Task{
		{ID: 1, Title: "Design Landing UI", StartDate: "2024-01-01"},
		{ID: 2, Title: "Build Kanban", StartDate: "2024-01-02"},
		{ID: 3, Title: "Bug: Gantt zoom glitch", StartDate: "2024-01-03"},
	}
	tl, err := Layout(tasks, ZoomDay)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	return tl.Rows
}

func matchedCount(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Matched {
			n++
		}
	}
	return n
}

func TestHighlight_CaseInsensitiveSubstring(t *testing.T) {
	rows := highlightRows(t)

	Highlight(rows, "GANTT")
	if !rows[2].Matched {
		t.Error("Expected uppercase query to match lowercase title key")
	}
	if rows[0].Matched || rows[1].Matched {
		t.Error("Expected non-matching rows unmarked")
	}
}

func TestHighlight_EmptyQueryMarksNothing(t *testing.T) {
	rows := highlightRows(t)

	Highlight(rows, "kanban")
	if matchedCount(rows) != 1 {
		t.Fatalf("Expected 1 match before clearing, got %d", matchedCount(rows))
	}

	// Empty query clears all highlighting: match nothing, not everything.
	Highlight(rows, "")
	if matchedCount(rows) != 0 {
		t.Errorf("Expected empty query to mark zero rows, got %d", matchedCount(rows))
	}
}

func TestHighlight_Idempotent(t *testing.T) {
	rows := highlightRows(t)

	Highlight(rows, "an")
	first := make([]bool, len(rows))
	for i, r := range rows {
		first[i] = r.Matched
	}

	Highlight(rows, "an")
	for i, r := range rows {
		if r.Matched != first[i] {
			t.Errorf("Row %d: repeated highlight changed match from %v to %v", i, first[i], r.Matched)
		}
	}
}

func TestHighlight_SubstringMonotonicity(t *testing.T) {
	// A query extending another can only shrink the match set.
	rows := highlightRows(t)

	Highlight(rows, "an")
	short := map[int]bool{}
	for i, r := range rows {
		short[i] = r.Matched
	}

	Highlight(rows, "anban")
	for i, r := range rows {
		if r.Matched && !short[i] {
			t.Errorf("Row %d matched the longer query but not its substring", i)
		}
	}
}
