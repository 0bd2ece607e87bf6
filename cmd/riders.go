package cmd

import (
	"context"
	"fmt"
	"os"

	"results-manager/core/config"
	"results-manager/core/database"
	"results-manager/core/logger"
	"results-manager/feature/registration"
	"results-manager/feature/registration/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var searchEmail string

// ridersCmd is the parent command for rider operations.
var ridersCmd = &cobra.Command{
	Use:   "riders",
	Short: "Look up club rider records",
}

// ridersSearchCmd finds existing rider records matching a name.
var ridersSearchCmd = &cobra.Command{
	Use:   "search <first-name> <last-name>",
	Short: "Find existing rider records matching a name",
	Long: `Search ranks riders without an email on file by name similarity,
using the same nickname-aware matching the registration flow uses.

Examples:
  # Find records for a registering rider
  riders search Bob Smith

  # Check an email first, fall back to name matching
  riders search Bob Smith --email bob@example.org`,
	Args: cobra.ExactArgs(2),
	RunE: runRidersSearch,
}

func init() {
	ridersSearchCmd.Flags().StringVar(&searchEmail, "email", "", "Email to check for an exact match first")

	ridersCmd.AddCommand(ridersSearchCmd)
	RootCmd.AddCommand(ridersCmd)
}

func runRidersSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := registration.NewService(registration.NewStore(db), l)

	if searchEmail != "" {
		candidate, err := svc.MatchByEmail(ctx, searchEmail)
		if err != nil {
			return err
		}
		if candidate != nil {
			fmt.Println("Exact email match:")
			printCandidates([]models.Candidate{*candidate})
			return nil
		}
		fmt.Printf("No rider has email %s on file.\n", searchEmail)
	}

	candidates := svc.FindCandidates(ctx, args[0], args[1])
	if len(candidates) == 0 {
		fmt.Println("No matching riders found.")
		return nil
	}
	printCandidates(candidates)
	return nil
}

func printCandidates(candidates []models.Candidate) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "First Season", "Results"})
	for _, c := range candidates {
		firstSeason := ""
		if c.FirstSeasonSeen != nil {
			firstSeason = fmt.Sprintf("%d", *c.FirstSeasonSeen)
		}
		t.AppendRow(table.Row{c.ID, c.FullName, firstSeason, c.TotalParticipations})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
