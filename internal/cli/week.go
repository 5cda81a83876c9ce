package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamholtz/trak/internal/dashboard"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

func WeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show this week's digest",
		Long: `Show the weekly digest: task load per status, tasks due this
week, open issues and risks due for review.

Examples:
  trak week
  trak week --json
`,
		RunE: runWeek,
	}
	addOutputFlags(cmd)
	return cmd
}

func runWeek(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	tasks, err := c.App.TaskService.ListTasks(ctx)
	if err != nil {
		formatter.Error("LIST_ERROR", err.Error())
		return err
	}
	risks, err := c.App.RiskService.ListRisks(ctx)
	if err != nil {
		formatter.Error("LIST_ERROR", err.Error())
		return err
	}

	weekStart, weekEnd := dashboard.CurrentWeek(time.Now())
	p := dashboard.Project(tasks, risks, weekStart, weekEnd)

	if jsonOutput || quietMode {
		return formatter.Success(p)
	}

	fmt.Printf("Week of %s - %s\n\n", timeline.FormatDay(p.WeekStart), timeline.FormatDay(p.WeekEnd))

	fmt.Println("Task load:")
	for _, s := range models.Statuses() {
		fmt.Printf("  %-12s %d\n", s, p.TaskLoad[s])
	}
	fmt.Printf("  dependencies %d\n\n", p.DependencyCount)

	fmt.Printf("Due this week (%d):\n", len(p.DueThisWeek))
	for _, t := range p.DueThisWeek {
		fmt.Printf("  %s\n", formatTaskLine(t))
	}
	fmt.Printf("\nOpen issues (%d):\n", len(p.OpenIssues))
	for _, t := range p.OpenIssues {
		fmt.Printf("  %s\n", formatTaskLine(t))
	}
	fmt.Printf("\nRisks due (%d):\n", len(p.RisksDue))
	for _, r := range p.RisksDue {
		fmt.Printf("  %s\n", formatRiskLine(r))
	}
	return nil
}
