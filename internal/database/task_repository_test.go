package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kamholtz/trak/internal/database"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/testutil"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, &models.Task{
		Title:        "Build Kanban",
		Description:  "Drag-and-drop columns",
		Status:       models.StatusInProgress,
		Type:         "task",
		Priority:     "medium",
		StoryPoints:  5,
		DueDate:      "2025-11-10",
		StartDate:    "2025-10-27",
		Dependencies: []int{1},
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected assigned ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected created timestamp")
	}

	got, err := repo.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if got.Title != "Build Kanban" || got.Status != models.StatusInProgress {
		t.Errorf("Round-trip mismatch: %+v", got)
	}
	if len(got.Dependencies) != 1 || got.Dependencies[0] != 1 {
		t.Errorf("Expected dependencies [1], got %v", got.Dependencies)
	}
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := testutil.SetupTestRepository(t)

	_, err := repo.GetTaskByID(context.Background(), 999)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepo_GetAll_PriorityThenDueOrdering(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	type spec struct {
		title    string
		priority string
		due      string
	}
	for _, s := range []spec{
		{"late medium", "medium", "2025-02-01"},
		{"critical", "critical", "2025-03-01"},
		{"early medium", "medium", "2025-01-01"},
	} {
		_, err := repo.CreateTask(ctx, &models.Task{
			Title: s.title, Status: models.StatusTodo, Priority: s.priority, DueDate: s.due,
		})
		if err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}

	want := []string{"critical", "early medium", "late medium"}
	if len(tasks) != len(want) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, tasks[i].Title)
		}
	}
}

func TestTaskRepo_GetByStatus(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	for _, s := range []models.Status{models.StatusTodo, models.StatusDone, models.StatusTodo} {
		if _, err := repo.CreateTask(ctx, &models.Task{Title: "t", Status: s}); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	todos, err := repo.GetTasksByStatus(ctx, models.StatusTodo)
	if err != nil {
		t.Fatalf("GetTasksByStatus failed: %v", err)
	}
	if len(todos) != 2 {
		t.Errorf("Expected 2 to-do tasks, got %d", len(todos))
	}
}

func TestTaskRepo_Update_PartialPatch(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, &models.Task{
		Title: "original", Status: models.StatusBacklog, Priority: "low",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	title := "renamed"
	due := "2025-06-01"
	if err := repo.UpdateTask(ctx, created.ID, database.TaskPatch{Title: &title, DueDate: &due}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	got, err := repo.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if got.Title != "renamed" || got.DueDate != "2025-06-01" {
		t.Errorf("Patch not applied: %+v", got)
	}
	// Untouched fields survive
	if got.Priority != "low" || got.Status != models.StatusBacklog {
		t.Errorf("Patch clobbered unrelated fields: %+v", got)
	}
}

func TestTaskRepo_Update_EmptyPatchRejected(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, &models.Task{Title: "t", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := repo.UpdateTask(ctx, created.ID, database.TaskPatch{}); err == nil {
		t.Error("Expected error for empty patch")
	}
}

func TestTaskRepo_UpdateStatus(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, &models.Task{Title: "t", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.UpdateTaskStatus(ctx, created.ID, models.StatusBlocked); err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}

	got, err := repo.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if got.Status != models.StatusBlocked {
		t.Errorf("Expected status blocked, got %q", got.Status)
	}
}

func TestTaskRepo_UpdateStatus_NotFound(t *testing.T) {
	repo := testutil.SetupTestRepository(t)

	err := repo.UpdateTaskStatus(context.Background(), 42, models.StatusDone)
	if !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := testutil.SetupTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, &models.Task{Title: "t", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.GetTaskByID(ctx, created.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on double delete, got %v", err)
	}
}
