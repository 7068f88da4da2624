package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alimgiray/gexplore/internal/cli"
	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/repositories"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/alimgiray/gexplore/pkg/config"
	"github.com/alimgiray/gexplore/pkg/database"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	dbPath   string
	date     string
	source   string
	seed     int64
	maxCount int
	export   string
	noColor  bool
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "contribgraph",
	Short: "Render the contribution calendar in the terminal",
	Long: `contribgraph draws the 53-week contribution calendar for the year ending
on --date (today by default).

Counts come from the random demo generator or from the contribution log
imported into the database with "contribgraph import".`,
	Args:             cobra.NoArgs,
	PersistentPreRun: initLogger,
	RunE:             runGraph,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import commit activity from GitHub into the contribution log",
	Long: `import counts the configured user's commits in each of GITHUB_REPOSITORIES
over the calendar window and stores them in the database.

It reads GITHUB_TOKEN, GITHUB_USERNAME and GITHUB_REPOSITORIES from the
environment or a .env file.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./gexplore.db", "SQLite database path")
	rootCmd.PersistentFlags().StringVarP(&date, "date", "d", "", "Last day of the calendar, YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.Flags().StringVarP(&source, "source", "s", services.ActivitySourceRandom, "Activity source: random or stored")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random source (0 picks one)")
	rootCmd.Flags().IntVar(&maxCount, "max-count", 4, "Highest daily count the random source draws")
	rootCmd.Flags().StringVarP(&export, "export", "o", "", "Also write the calendar to this .xlsx file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colours")

	rootCmd.AddCommand(importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger(cmd *cobra.Command, args []string) {
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger.Init(level, cmd.ErrOrStderr())
}

func runGraph(cmd *cobra.Command, args []string) error {
	today, err := referenceDay(date)
	if err != nil {
		return err
	}

	var activity services.ActivitySource
	switch source {
	case services.ActivitySourceRandom:
		activity = services.NewRandomActivitySource(maxCount, seed)
	case services.ActivitySourceStored:
		db, err := database.Open(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		activity = services.NewStoredActivitySource(
			repositories.NewContributionRepository(db),
			repositories.NewKeyValueRepository(db),
		)
	default:
		return fmt.Errorf("unknown source %q, want %s or %s", source, services.ActivitySourceRandom, services.ActivitySourceStored)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	calendar, err := services.NewContributionService(activity).BuildCalendar(ctx, today)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), cli.RenderGraph(calendar, cli.RenderOptions{Color: !noColor}))

	if export != "" {
		if err := writeExport(calendar, export); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", export)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	today, err := referenceDay(date)
	if err != nil {
		return err
	}

	if err := config.Load(); err != nil {
		return err
	}
	githubConfig := config.AppConfig.GitHub
	if !githubConfig.Enabled() {
		return services.ErrGitHubNotConfigured
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	activityService := services.NewGitHubActivityService(
		services.NewGitHubClient(githubConfig.Token),
		githubConfig.Username,
		githubConfig.Repositories,
		repositories.NewContributionRepository(db),
		repositories.NewKeyValueRepository(db),
		time.Local,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := activityService.Sync(ctx, today)
	if err != nil {
		return err
	}

	printSyncResult(cmd.OutOrStdout(), result)
	return nil
}

func printSyncResult(w io.Writer, result *services.SyncResult) {
	fmt.Fprintf(w, "Imported %d commits on %d days from %d repositories (%s to %s)\n",
		result.Commits, result.ActiveDays, result.Repositories,
		models.DayKey(result.From), models.DayKey(result.Through))
	fmt.Fprintf(w, "Log now covers %s to %s with %d contributions\n",
		models.DayKey(result.Coverage.From), models.DayKey(result.Coverage.Through), result.StoredTotal)
}

func writeExport(calendar *models.ContributionCalendar, path string) error {
	buf, err := services.ExportCalendar(calendar)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// referenceDay parses value as a local date, today when empty
func referenceDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	day, err := models.ParseDay(value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", value)
	}
	return day, nil
}
