package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamholtz/trak/internal/database"
)

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long: `Populate the database with a sample program increment, sprints,
tasks and risks. Useful for trying out the board and timeline views.`,
		RunE: runSeed,
	}
	addOutputFlags(cmd)
	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	if err := database.Seed(ctx, c.DB()); err != nil {
		formatter.Error("SEED_ERROR", err.Error())
		return err
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"seeded": true})
	}
	fmt.Println("Sample data loaded")
	return nil
}
