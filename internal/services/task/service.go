package task

import (
	"context"
	"fmt"

	"github.com/kamholtz/trak/internal/board"
	"github.com/kamholtz/trak/internal/database"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ListTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, taskID int) error

	// MoveToStatus is the write behind a kanban move: it delegates the
	// status change to the store, never mutating local derived state.
	MoveToStatus(ctx context.Context, taskID int, status models.Status) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Title is the only required field.
type CreateTaskRequest struct {
	Title        string
	Description  string
	Status       models.Status
	Type         string
	Priority     string
	StoryPoints  int
	ParentID     *int
	DueDate      string
	StartDate    string
	EndDate      string
	PIID         *int
	SprintID     *int
	Assignee     string
	Dependencies []int
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update.
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	Description *string
	Status      *models.Status
	Type        *string
	Priority    *string
	StoryPoints *int
	DueDate     *string
	StartDate   *string
	EndDate     *string
	Assignee    *string
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *service) ListTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	if err := board.ValidateMove(status); err != nil {
		return nil, err
	}
	tasks, err := s.repo.GetTasksByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by status: %w", err)
	}
	return tasks, nil
}

func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	return s.repo.GetTaskByID(ctx, taskID)
}

// CreateTask handles task creation with validation and defaults
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// Defaults mirror the store's column defaults
	if req.Status == "" {
		req.Status = models.StatusBacklog
	}
	if req.Type == "" {
		req.Type = "task"
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	created, err := s.repo.CreateTask(ctx, &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Type:         req.Type,
		Priority:     req.Priority,
		StoryPoints:  req.StoryPoints,
		ParentID:     req.ParentID,
		DueDate:      req.DueDate,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		PIID:         req.PIID,
		SprintID:     req.SprintID,
		Assignee:     req.Assignee,
		Dependencies: req.Dependencies,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// UpdateTask handles task updates with validation
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) error {
	if req.TaskID <= 0 {
		return ErrInvalidTaskID
	}
	if req.Title != nil && *req.Title == "" {
		return ErrEmptyTitle
	}
	if req.Title != nil && len(*req.Title) > 255 {
		return ErrTitleTooLong
	}
	if req.Status != nil {
		if err := board.ValidateMove(*req.Status); err != nil {
			return err
		}
	}
	for _, d := range []*string{req.DueDate, req.StartDate, req.EndDate} {
		if err := validateDate(d); err != nil {
			return err
		}
	}

	patch := database.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Type:        req.Type,
		Priority:    req.Priority,
		StoryPoints: req.StoryPoints,
		DueDate:     req.DueDate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Assignee:    req.Assignee,
	}
	if patch == (database.TaskPatch{}) {
		return ErrEmptyUpdate
	}

	if err := s.repo.UpdateTask(ctx, req.TaskID, patch); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// MoveToStatus validates the target bucket and delegates the write.
// Any bucket-to-bucket move is legal; there is no transition graph.
func (s *service) MoveToStatus(ctx context.Context, taskID int, status models.Status) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	if err := board.ValidateMove(status); err != nil {
		return err
	}
	if err := s.repo.UpdateTaskStatus(ctx, taskID, status); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}
	return nil
}

func validateCreate(req CreateTaskRequest) error {
	if req.Title == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > 255 {
		return ErrTitleTooLong
	}
	if req.Status != "" {
		if err := board.ValidateMove(req.Status); err != nil {
			return err
		}
	}
	for _, d := range []string{req.DueDate, req.StartDate, req.EndDate} {
		if err := validateDate(&d); err != nil {
			return err
		}
	}
	return nil
}

// validateDate accepts nil (no change) and empty (clear the field); any
// other value must be a parseable calendar day.
func validateDate(d *string) error {
	if d == nil || *d == "" {
		return nil
	}
	if _, ok := timeline.ParseDay(*d); !ok {
		return fmt.Errorf("%w: %q", ErrBadDate, *d)
	}
	return nil
}
