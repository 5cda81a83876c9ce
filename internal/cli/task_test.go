package cli

import (
	"strings"
	"testing"

	"github.com/kamholtz/trak/internal/models"
)

func TestStatusListNamesTheClosedSet(t *testing.T) {
	list := statusList()

	for _, s := range models.Statuses() {
		if !strings.Contains(list, string(s)) {
			t.Errorf("status suggestion %q is missing %q", list, s)
		}
	}
	// Every named value must pass validation when pasted back in.
	for _, name := range strings.Split(list, ", ") {
		if !models.Status(name).IsValid() {
			t.Errorf("status suggestion names %q, which fails validation", name)
		}
	}
}
