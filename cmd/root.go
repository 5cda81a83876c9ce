package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/kamholtz/trak/internal/cli"
	"github.com/kamholtz/trak/internal/config"
	"github.com/kamholtz/trak/internal/tui"
	"github.com/kamholtz/trak/internal/tui/components"
	"github.com/kamholtz/trak/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "trak",
	Short: "Trak - a terminal-based project tracker",
	Long: `Trak is a terminal-based project tracker with a kanban board,
a Gantt timeline and a weekly dashboard. Running trak with no
arguments opens the interactive TUI; subcommands expose the same
data for scripts and agents.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.RiskCmd())
	rootCmd.AddCommand(cli.WeekCmd())
	rootCmd.AddCommand(cli.SeedCmd())
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	c, err := cli.NewCLI(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	model := tui.InitialModel(ctx, c.App, cfg)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
