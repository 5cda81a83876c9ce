package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamholtz/trak/internal/models"
	riskservice "github.com/kamholtz/trak/internal/services/risk"
)

var (
	riskTitle       string
	riskDescription string
	riskImpact      string
	riskProbability string
	riskMitigation  string
	riskOwner       string
	riskReviewDate  string
)

func RiskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Manage the risk register",
	}

	cmd.AddCommand(riskCreateCmd())
	cmd.AddCommand(riskListCmd())
	cmd.AddCommand(riskResolveCmd())

	return cmd
}

func riskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a risk to the register",
		Long: `Add a risk to the register.

Examples:
  trak risk create --title="Vendor API deprecation" --impact=high --probability=medium
  trak risk create --title="Key person dependency" --owner=dana --review=2026-10-01 --quiet
`,
		RunE: runRiskCreate,
	}

	cmd.Flags().StringVar(&riskTitle, "title", "", "Risk title (required)")
	cmd.MarkFlagRequired("title")

	cmd.Flags().StringVar(&riskDescription, "description", "", "Risk description")
	cmd.Flags().StringVar(&riskImpact, "impact", "medium", "Impact: low, medium, high")
	cmd.Flags().StringVar(&riskProbability, "probability", "medium", "Probability: low, medium, high")
	cmd.Flags().StringVar(&riskMitigation, "mitigation", "", "Mitigation plan")
	cmd.Flags().StringVar(&riskOwner, "owner", "", "Risk owner")
	cmd.Flags().StringVar(&riskReviewDate, "review", "", "Review date (YYYY-MM-DD)")

	addOutputFlags(cmd)

	return cmd
}

func runRiskCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	req := riskservice.CreateRiskRequest{
		Title:       riskTitle,
		Description: riskDescription,
		Impact:      riskImpact,
		Probability: riskProbability,
		Mitigation:  riskMitigation,
		Owner:       riskOwner,
		ReviewDate:  riskReviewDate,
	}

	created, err := c.App.RiskService.CreateRisk(ctx, req)
	if err != nil {
		formatter.Error("VALIDATION_ERROR", err.Error())
		os.Exit(ExitValidation)
	}

	return formatter.Success(created)
}

func riskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List risks",
		RunE:  runRiskList,
	}
	addOutputFlags(cmd)
	return cmd
}

func runRiskList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	risks, err := c.App.RiskService.ListRisks(ctx)
	if err != nil {
		formatter.Error("LIST_ERROR", err.Error())
		return err
	}

	if quietMode {
		for _, r := range risks {
			fmt.Println(r.ID)
		}
		return nil
	}
	return formatter.Success(risks)
}

func riskResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <id>",
		Short: "Mark a risk as resolved",
		Args:  cobra.ExactArgs(1),
		RunE:  runRiskResolve,
	}
	addOutputFlags(cmd)
	return cmd
}

func runRiskResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		formatter.Error("INVALID_ID", fmt.Sprintf("invalid risk ID %q", args[0]))
		os.Exit(ExitUsage)
	}

	c, err := NewCLI(ctx)
	if err != nil {
		formatter.Error("INITIALIZATION_ERROR", err.Error())
		return err
	}
	defer c.Close()

	status := "resolved"
	resolved := time.Now().Format("2006-01-02")
	update := riskservice.UpdateRiskRequest{
		RiskID:       id,
		Status:       &status,
		ResolvedDate: &resolved,
	}
	if err := c.App.RiskService.UpdateRisk(ctx, update); err != nil {
		if errors.Is(err, models.ErrRiskNotFound) {
			formatter.Error("RISK_NOT_FOUND", fmt.Sprintf("risk %d not found", id))
			os.Exit(ExitNotFound)
		}
		formatter.Error("UPDATE_ERROR", err.Error())
		return err
	}

	risk, err := c.App.RiskService.GetRisk(ctx, id)
	if err != nil {
		formatter.Error("FETCH_ERROR", err.Error())
		return err
	}
	return formatter.Success(risk)
}
