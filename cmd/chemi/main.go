package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/palemoky/name-chemi/internal/chemi"
	"github.com/palemoky/name-chemi/internal/config"
	"github.com/palemoky/name-chemi/internal/content"
	"github.com/palemoky/name-chemi/internal/database"
	"github.com/palemoky/name-chemi/internal/helpers"
	"github.com/palemoky/name-chemi/internal/logger"
	"github.com/palemoky/name-chemi/internal/survey"
)

var (
	configPath  string
	contentFile string
	timezone    string
	verbose     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chemi",
		Short:         "Name compatibility calculator",
		Long:          "Compute name chemistry readings and weekly forecasts from the command line",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logger.Options{Debug: verbose, Level: levelFor(verbose)})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "Content pools YAML (overrides config)")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "", "IANA time zone deciding today (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newCalcCmd(), newWeeklyCmd(), newLevelsCmd(), newSurveyCmd())
	return rootCmd
}

func levelFor(verbose bool) string {
	if verbose {
		return "debug"
	}
	return "warn"
}

func newCalcCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "calc NAME1 NAME2",
		Short: "Compute the reading for two names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup()
			if err != nil {
				return err
			}
			if err := checkNames(cfg, args[0], args[1]); err != nil {
				return err
			}

			result, err := engine.Calculate(args[0], args[1], date)
			if err != nil {
				return err
			}
			return renderResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

func newWeeklyCmd() *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "weekly NAME1 NAME2",
		Short: "Show the Monday to Sunday forecast for two names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup()
			if err != nil {
				return err
			}
			if err := checkNames(cfg, args[0], args[1]); err != nil {
				return err
			}

			var forecast *chemi.Forecast
			if today == "" {
				forecast, err = engine.WeeklyForecast(args[0], args[1])
			} else {
				var day time.Time
				if day, err = chemi.ParseDateKey(today); err != nil {
					return err
				}
				forecast, err = engine.WeeklyForecastAt(args[0], args[1], day)
			}
			if err != nil {
				return err
			}
			return renderWeekly(cmd.OutOrStdout(), forecast)
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "Any day of the week to forecast, as YYYY-MM-DD")
	return cmd
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the attraction levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderLevels(cmd.OutOrStdout())
		},
	}
}

func newSurveyCmd() *cobra.Command {
	var (
		namesFile string
		date      string
		workers   int
		save      bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "survey [NAME...]",
		Short: "Compute every pair of a name list and report the level distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, err := setup()
			if err != nil {
				return err
			}

			names := args
			if namesFile != "" {
				fromFile, err := readNames(namesFile)
				if err != nil {
					return err
				}
				names = append(names, fromFile...)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := survey.NewSurveyor(engine, workers)
			if !quiet {
				s.SetProgressOutput(cmd.ErrOrStderr())
			}

			report, err := s.Run(ctx, names, date)
			if report == nil {
				return err
			}
			if renderErr := renderSurvey(cmd.OutOrStdout(), report); renderErr != nil {
				return renderErr
			}
			if err != nil {
				return err
			}

			if save {
				return saveReport(ctx, cfg, report)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namesFile, "file", "f", "", "File with one name per line")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (default: today)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of concurrent workers (0 = number of CPUs)")
	cmd.Flags().BoolVar(&save, "save", false, "Store the report in the configured database")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Hide the progress bar")
	return cmd
}

// setup loads the configuration and builds an engine from it
func setup() (*config.Config, *chemi.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if contentFile != "" {
		cfg.Chemi.ContentFile = contentFile
	}
	if timezone != "" {
		cfg.Chemi.Timezone = timezone
	}

	loc, err := cfg.Chemi.Location()
	if err != nil {
		return nil, nil, err
	}

	pools, err := content.Open(cfg.Chemi.ContentFile)
	if err != nil {
		logger.Fatal("Failed to load content pools",
			zap.String("file", cfg.Chemi.ContentFile),
			zap.Error(err),
		)
	}

	return cfg, chemi.NewEngine(pools, chemi.WithLocation(loc)), nil
}

func checkNames(cfg *config.Config, name1, name2 string) error {
	rules := helpers.NewNameRules(cfg.Chemi.MinNameLength, cfg.Chemi.MaxNameLength)
	if i := rules.FirstInvalid(name1, name2); i >= 0 {
		return fmt.Errorf("name %d must be %d to %d characters after trimming", i+1, rules.Min, rules.Max)
	}
	return nil
}

// readNames reads one name per line, skipping blank lines and # comments
func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open names file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read names file: %w", err)
	}
	return names, nil
}

func saveReport(ctx context.Context, cfg *config.Config, report *survey.Report) error {
	db, err := database.Open(cfg.Database.Path, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := survey.SaveReport(ctx, database.NewRepository(db), report); err != nil {
		return err
	}

	logger.Info("Survey report saved",
		zap.String("database", cfg.Database.Path),
		zap.String("key", survey.KeyPrefix+report.Date),
	)
	return nil
}
