package plan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kamholtz/trak/internal/services/plan"
	"github.com/kamholtz/trak/internal/testutil"
)

func newService(t *testing.T) plan.Service {
	t.Helper()
	return plan.NewService(testutil.SetupTestRepository(t))
}

func TestPIRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.CreatePI(ctx, "PI-7", "2025-07-01", "2025-08-26")
	if err != nil {
		t.Fatalf("CreatePI error: %v", err)
	}

	if err := svc.UpdatePI(ctx, created.ID, "PI-7", "2025-07-08", "2025-09-02"); err != nil {
		t.Fatalf("UpdatePI error: %v", err)
	}

	pis, err := svc.ListPIs(ctx)
	if err != nil {
		t.Fatalf("ListPIs error: %v", err)
	}
	if len(pis) != 1 || pis[0].StartDate != "2025-07-08" {
		t.Fatalf("pis = %+v, want one starting 2025-07-08", pis)
	}

	if err := svc.DeletePI(ctx, created.ID); err != nil {
		t.Fatalf("DeletePI error: %v", err)
	}
}

func TestSprintBelongsToPI(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	pi, err := svc.CreatePI(ctx, "PI-1", "2025-06-02", "2025-07-28")
	if err != nil {
		t.Fatalf("CreatePI error: %v", err)
	}

	sprint, err := svc.CreateSprint(ctx, &pi.ID, "Sprint 1", "2025-06-02", "2025-06-13")
	if err != nil {
		t.Fatalf("CreateSprint error: %v", err)
	}
	if sprint.PIID == nil || *sprint.PIID != pi.ID {
		t.Errorf("sprint PI = %v, want %d", sprint.PIID, pi.ID)
	}
}

func TestWindowValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.CreatePI(ctx, "", "", ""); !errors.Is(err, plan.ErrEmptyName) {
		t.Errorf("empty name error = %v, want %v", err, plan.ErrEmptyName)
	}
	if _, err := svc.CreateSprint(ctx, nil, "Sprint 1", "June 2nd", ""); !errors.Is(err, plan.ErrBadDate) {
		t.Errorf("bad date error = %v, want %v", err, plan.ErrBadDate)
	}
}

func TestTimeOffRoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.CreateTimeOff(ctx, "", "holiday", ""); !errors.Is(err, plan.ErrMissingDate) {
		t.Errorf("missing date error = %v, want %v", err, plan.ErrMissingDate)
	}

	created, err := svc.CreateTimeOff(ctx, "2025-07-04", "holiday", "Independence Day")
	if err != nil {
		t.Fatalf("CreateTimeOff error: %v", err)
	}

	entries, err := svc.ListTimeOff(ctx)
	if err != nil {
		t.Fatalf("ListTimeOff error: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2025-07-04" {
		t.Fatalf("entries = %+v, want one on 2025-07-04", entries)
	}

	if err := svc.DeleteTimeOff(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTimeOff error: %v", err)
	}
}
