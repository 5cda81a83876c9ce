package task_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kamholtz/trak/internal/board"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/services/task"
	"github.com/kamholtz/trak/internal/testutil"
)

func newService(t *testing.T) task.Service {
	t.Helper()
	return task.NewService(testutil.SetupTestRepository(t))
}

func mustCreate(t *testing.T, svc task.Service, req task.CreateTaskRequest) *models.Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTask(%q) error: %v", req.Title, err)
	}
	return created
}

func TestCreateTaskDefaults(t *testing.T) {
	svc := newService(t)

	created := mustCreate(t, svc, task.CreateTaskRequest{Title: "triage inbox"})

	if created.Status != models.StatusBacklog {
		t.Errorf("default status = %q, want %q", created.Status, models.StatusBacklog)
	}
	if created.Type != "task" {
		t.Errorf("default type = %q, want %q", created.Type, "task")
	}
	if created.Priority != models.PriorityMedium {
		t.Errorf("default priority = %q, want %q", created.Priority, models.PriorityMedium)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name    string
		req     task.CreateTaskRequest
		wantErr error
	}{
		{"empty title", task.CreateTaskRequest{}, task.ErrEmptyTitle},
		{"title too long", task.CreateTaskRequest{Title: strings.Repeat("x", 256)}, task.ErrTitleTooLong},
		{"unknown status", task.CreateTaskRequest{Title: "t", Status: "archived"}, models.ErrUnknownStatus},
		{"bad due date", task.CreateTaskRequest{Title: "t", DueDate: "next tuesday"}, task.ErrBadDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateTask error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	svc := newService(t)
	created := mustCreate(t, svc, task.CreateTaskRequest{
		Title:    "write release notes",
		Priority: models.PriorityHigh,
	})

	title := "write and publish release notes"
	if err := svc.UpdateTask(context.Background(), task.UpdateTaskRequest{
		TaskID: created.ID,
		Title:  &title,
	}); err != nil {
		t.Fatalf("UpdateTask error: %v", err)
	}

	got, err := svc.GetTask(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetTask error: %v", err)
	}
	if got.Title != title {
		t.Errorf("title = %q, want %q", got.Title, title)
	}
	if got.Priority != models.PriorityHigh {
		t.Errorf("priority changed by partial update: %q", got.Priority)
	}
}

func TestUpdateTaskRejectsEmptyPatch(t *testing.T) {
	svc := newService(t)
	created := mustCreate(t, svc, task.CreateTaskRequest{Title: "t"})

	err := svc.UpdateTask(context.Background(), task.UpdateTaskRequest{TaskID: created.ID})
	if !errors.Is(err, task.ErrEmptyUpdate) {
		t.Errorf("UpdateTask error = %v, want %v", err, task.ErrEmptyUpdate)
	}
}

// A kanban move commits through the store; the board is rebuilt from a
// re-fetch, so the task shows up in exactly its new column.
func TestMoveToStatusRepartitions(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created := mustCreate(t, svc, task.CreateTaskRequest{
		Title:  "fix flaky migration",
		Status: models.StatusTodo,
	})

	if err := svc.MoveToStatus(ctx, created.ID, models.StatusBlocked); err != nil {
		t.Fatalf("MoveToStatus error: %v", err)
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks error: %v", err)
	}
	b := board.Partition(tasks)

	for _, status := range models.Statuses() {
		found := false
		for _, tk := range b.Buckets[status] {
			if tk.ID == created.ID {
				found = true
			}
		}
		if status == models.StatusBlocked && !found {
			t.Errorf("task missing from %q column after move", status)
		}
		if status != models.StatusBlocked && found {
			t.Errorf("task still present in %q column after move", status)
		}
	}
	if len(b.Unassigned) != 0 {
		t.Errorf("unassigned column has %d tasks, want 0", len(b.Unassigned))
	}
}

func TestMoveToStatusUnknownBucket(t *testing.T) {
	svc := newService(t)
	created := mustCreate(t, svc, task.CreateTaskRequest{Title: "t"})

	err := svc.MoveToStatus(context.Background(), created.ID, "archived")
	if !errors.Is(err, models.ErrUnknownStatus) {
		t.Errorf("MoveToStatus error = %v, want %v", err, models.ErrUnknownStatus)
	}
}

func TestMoveToStatusMissingTask(t *testing.T) {
	svc := newService(t)

	err := svc.MoveToStatus(context.Background(), 999, models.StatusDone)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("MoveToStatus error = %v, want %v", err, models.ErrTaskNotFound)
	}
}

func TestDeleteTask(t *testing.T) {
	svc := newService(t)
	created := mustCreate(t, svc, task.CreateTaskRequest{Title: "t"})

	if err := svc.DeleteTask(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteTask error: %v", err)
	}
	if _, err := svc.GetTask(context.Background(), created.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("GetTask after delete error = %v, want %v", err, models.ErrTaskNotFound)
	}
}
