package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"results-manager/core/config"
	"results-manager/core/database"
	"results-manager/core/extractor"
	"results-manager/core/legacyhtml"
	"results-manager/core/logger"
	"results-manager/core/reconcile"
	"results-manager/feature/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the validate command
	validateFormat  string
	validateNoCache bool
)

// validateCmd reconciles one chapter/year legacy result page against the
// database and prints the discrepancy report.
var validateCmd = &cobra.Command{
	Use:   "validate <chapter> <year>",
	Short: "Validate legacy result pages against the database",
	Long: `Validate fetches the legacy HTML result page for one chapter and year,
extracts its events, and reconciles them against the canonical database.

The report lists per-event matches with confidence scores and every
discrepancy found, classified by type and severity. Discrepancies are
findings, not errors: the command exits zero as long as the pipeline ran.

Examples:
  # Validate the north chapter's 2010 season
  validate north 2010

  # Same, as a markdown report, bypassing the page cache
  validate north 2010 --format markdown --no-cache`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "console", "Report format: console, json, or markdown")
	validateCmd.Flags().BoolVar(&validateNoCache, "no-cache", false, "Fetch the page fresh instead of using the disk cache")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	chapter := args[0]
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("year must be a number: %q", args[1])
	}

	format, err := reconcile.ParseFormat(validateFormat)
	if err != nil {
		return err
	}

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

	l.Info("Starting validation", zap.String("chapter", chapter), zap.Int("year", year))

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fetcher := legacyhtml.NewClient(cfg.Source, l)
	extractorClient := extractor.NewClient(cfg.Extractor)

	svc := validation.NewService(fetcher, extractorClient, validation.NewStore(db), cfg.Source.BaseURL, l)

	report, err := svc.Validate(ctx, chapter, year, !validateNoCache)
	if err != nil {
		return err
	}

	return reconcile.Render(os.Stdout, report, format)
}
