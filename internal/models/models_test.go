package models

import "testing"

func TestStatuses_OrderAndCount(t *testing.T) {
	statuses := Statuses()
	if len(statuses) != 6 {
		t.Fatalf("Expected 6 statuses, got %d", len(statuses))
	}

	expected := []Status{
		StatusBacklog, StatusTodo, StatusInProgress,
		StatusBlocked, StatusDone, StatusCancelled,
	}
	for i, s := range expected {
		if statuses[i] != s {
			t.Errorf("Expected status %q at index %d, got %q", s, i, statuses[i])
		}
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}

	invalid := []Status{"archived", "todo", "In Progress", ""}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusBacklog, false},
		{StatusTodo, false},
		{StatusInProgress, false},
		{StatusBlocked, false},
		{StatusDone, true},
		{StatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestPriorityRank_Ordering(t *testing.T) {
	ordered := []string{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityTrivial}
	for i := 1; i < len(ordered); i++ {
		if PriorityRank(ordered[i-1]) >= PriorityRank(ordered[i]) {
			t.Errorf("Expected %q to rank before %q", ordered[i-1], ordered[i])
		}
	}

	// Unknown labels sort last
	if PriorityRank("urgent-ish") <= PriorityRank(PriorityTrivial) {
		t.Error("Expected unknown priority to rank after trivial")
	}
}

func TestTask_EffectiveDueDate(t *testing.T) {
	tests := []struct {
		name     string
		due      string
		planned  string
		expected string
	}{
		{"due date wins", "2024-01-05", "2024-01-10", "2024-01-05"},
		{"planned end fallback", "", "2024-01-10", "2024-01-10"},
		{"neither set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{DueDate: tt.due, PlannedEndDate: tt.planned}
			if got := task.EffectiveDueDate(); got != tt.expected {
				t.Errorf("EffectiveDueDate() = %q, want %q", got, tt.expected)
			}
		})
	}
}
