package state

import "testing"

func TestSearchStateEditing(t *testing.T) {
	s := NewSearchState()

	for _, c := range "gantt" {
		if !s.AppendChar(c) {
			t.Fatalf("AppendChar(%q) refused", c)
		}
	}
	if s.Query != "gantt" {
		t.Errorf("query = %q, want gantt", s.Query)
	}

	if !s.Backspace() {
		t.Error("Backspace on non-empty query returned false")
	}
	if s.Query != "gant" {
		t.Errorf("query after backspace = %q, want gant", s.Query)
	}

	s.Clear()
	if s.Query != "" {
		t.Errorf("query after clear = %q, want empty", s.Query)
	}
	if s.Backspace() {
		t.Error("Backspace on empty query returned true")
	}
}

func TestSearchStateMaxLength(t *testing.T) {
	s := NewSearchState()
	for i := 0; i < 100; i++ {
		s.AppendChar('x')
	}
	if s.AppendChar('y') {
		t.Error("AppendChar beyond max length returned true")
	}
	if len(s.Query) != 100 {
		t.Errorf("query length = %d, want 100", len(s.Query))
	}
}

func TestSearchStateActivation(t *testing.T) {
	s := NewSearchState()
	s.Activate()
	if !s.IsActive {
		t.Error("expected filter to be active")
	}
	s.Deactivate()
	if s.IsActive {
		t.Error("expected filter to be inactive")
	}
}
