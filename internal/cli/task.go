package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamholtz/trak/internal/models"
	taskservice "github.com/kamholtz/trak/internal/services/task"
	"github.com/kamholtz/trak/internal/user"
)

var (
	taskTitle       string
	taskDescription string
	taskStatus      string
	taskType        string
	taskPriority    string
	taskDueDate     string
	taskStartDate   string
	taskEndDate     string
	taskAssignee    string

	// Agent-friendly flags (add to ALL commands)
	jsonOutput bool
	quietMode  bool
)

func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskMoveCmd())
	cmd.AddCommand(taskDeleteCmd())

	return cmd
}

func taskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task with specified attributes.

Examples:
  # Simple task (human-readable output)
  trak task create --title="Fix login bug"

  # JSON output for agents
  trak task create --title="Fix login bug" --json

  # Quiet mode for bash capture
  TASK_ID=$(trak task create --title="Fix login bug" --quiet)

  # Full example with scheduling
  trak task create \
    --title="Add authentication" \
    --description="Implement JWT auth" \
    --type=feature \
    --priority=high \
    --start=2026-09-01 \
    --end=2026-09-12
`,
		RunE: runTaskCreate,
	}

	cmd.Flags().StringVar(&taskTitle, "title", "", "Task title (required)")
	cmd.MarkFlagRequired("title")

	cmd.Flags().StringVar(&taskDescription, "description", "", "Task description")
	cmd.Flags().StringVar(&taskStatus, "status", "", "Status (defaults to backlog)")
	cmd.Flags().StringVar(&taskType, "type", "task", "Task type: task, feature or bug")
	cmd.Flags().StringVar(&taskPriority, "priority", "medium", "Priority: trivial, low, medium, high, critical")
	cmd.Flags().StringVar(&taskDueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taskStartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taskEndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&taskAssignee, "assignee", user.DefaultAssignee(), "Assignee name")

	addOutputFlags(cmd)

	return cmd
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	req := taskservice.CreateTaskRequest{
		Title:       taskTitle,
		Description: taskDescription,
		Status:      models.Status(taskStatus),
		Type:        taskType,
		Priority:    taskPriority,
		DueDate:     taskDueDate,
		StartDate:   taskStartDate,
		EndDate:     taskEndDate,
		Assignee:    taskAssignee,
	}

	created, err := c.App.TaskService.CreateTask(ctx, req)
	if err != nil {
		formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(ExitValidation)
	}

	return formatter.Success(created)
}

func taskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List all tasks, optionally filtered by status.

Examples:
  trak task list
  trak task list --status="in progress"
  trak task list --json
`,
		RunE: runTaskList,
	}

	cmd.Flags().StringVar(&taskStatus, "status", "", "Filter by status")
	addOutputFlags(cmd)

	return cmd
}

func runTaskList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	var tasks []*models.Task
	if taskStatus != "" {
		status := models.Status(taskStatus)
		if !status.IsValid() {
			formatter.ErrorWithSuggestion("INVALID_STATUS",
				fmt.Sprintf("unknown status %q", taskStatus),
				"valid statuses: "+statusList())
			os.Exit(ExitValidation)
		}
		tasks, err = c.App.TaskService.ListTasksByStatus(ctx, status)
	} else {
		tasks, err = c.App.TaskService.ListTasks(ctx)
	}
	if err != nil {
		formatter.Error("LIST_ERROR", err.Error())
		return err
	}

	if quietMode {
		for _, t := range tasks {
			fmt.Println(t.ID)
		}
		return nil
	}
	return formatter.Success(tasks)
}

func taskMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another status",
		Args:  cobra.ExactArgs(2),
		RunE:  runTaskMove,
	}
	addOutputFlags(cmd)
	return cmd
}

func runTaskMove(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		formatter.Error("INVALID_ID", fmt.Sprintf("invalid task ID %q", args[0]))
		os.Exit(ExitUsage)
	}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	if err := c.App.TaskService.MoveToStatus(ctx, id, models.Status(args[1])); err != nil {
		switch {
		case errors.Is(err, models.ErrTaskNotFound):
			formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("task %d not found", id))
			os.Exit(ExitNotFound)
		case errors.Is(err, models.ErrUnknownStatus):
			formatter.ErrorWithSuggestion("INVALID_STATUS",
				fmt.Sprintf("unknown status %q", args[1]),
				"valid statuses: "+statusList())
			os.Exit(ExitValidation)
		default:
			formatter.Error("MOVE_ERROR", err.Error())
			os.Exit(ExitError)
		}
	}

	task, err := c.App.TaskService.GetTask(ctx, id)
	if err != nil {
		formatter.Error("FETCH_ERROR", err.Error())
		return err
	}
	return formatter.Success(task)
}

func taskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE:  runTaskDelete,
	}
	addOutputFlags(cmd)
	return cmd
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		formatter.Error("INVALID_ID", fmt.Sprintf("invalid task ID %q", args[0]))
		os.Exit(ExitUsage)
	}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	if err := c.App.TaskService.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("task %d not found", id))
			os.Exit(ExitNotFound)
		}
		formatter.Error("DELETE_ERROR", err.Error())
		return err
	}

	return formatter.Success(map[string]interface{}{"deleted": id})
}

// statusList names the closed status set for error suggestions, in
// board order.
func statusList() string {
	statuses := models.Statuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// addOutputFlags registers the agent-friendly flags every command carries.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&quietMode, "quiet", false, "Minimal output (IDs only)")
}
