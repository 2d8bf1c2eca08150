package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mr1hm/dubai-infra-gen/internal/config"
	"github.com/mr1hm/dubai-infra-gen/internal/logging"
	"github.com/mr1hm/dubai-infra-gen/internal/pipeline"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "infragen",
	Short: "Generate the synthetic Dubai infrastructure dataset",
	Long: `Generates zones, infrastructure assets, IoT sensors and alerts for Dubai,
writes them to a SQLite database and exports every table to CSV.

Settings come from the environment (or CONFIG_FILE); see internal/config.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runGenerate,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	res, err := pipeline.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	slog.Info("data generation complete",
		"run_id", res.Dataset.Run.ID,
		"zones", len(res.Dataset.Zones),
		"assets", len(res.Dataset.Assets),
		"sensors", len(res.Dataset.Sensors),
		"alerts", len(res.Dataset.Alerts),
		"database", res.DBPath,
	)
	return nil
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logging.Fatalf("Fatal: %v", err)
	}
}
