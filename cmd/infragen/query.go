package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/report"
	"github.com/mr1hm/dubai-infra-gen/internal/repository"
)

var (
	queryDistrict string
	queryRisk     string
	alertRisk     string
	queryLimit    int
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query a previously generated database",
}

var queryAssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Worst-condition assets in a district",
	Args:  cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, db *repository.SQLiteDB) error {
		assets, err := db.AssetsByDistrict(cmd.Context(), repository.AssetFilter{
			District:  queryDistrict,
			RiskLevel: models.RiskLevel(queryRisk),
			Limit:     queryLimit,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Assets(assets))
		return nil
	}),
}

var queryAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Active high and critical alerts",
	Args:  cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, db *repository.SQLiteDB) error {
		alerts, err := db.ActiveAlerts(cmd.Context(), repository.AlertFilter{
			RiskLevel: models.RiskLevel(alertRisk),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Alerts(alerts))
		return nil
	}),
}

var queryStatsRiskCmd = &cobra.Command{
	Use:   "stats-risk",
	Short: "Asset statistics grouped by risk level",
	Args:  cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, db *repository.SQLiteDB) error {
		stats, err := db.StatsByRisk(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Stats("risk level", stats))
		return nil
	}),
}

var queryStatsDistrictCmd = &cobra.Command{
	Use:   "stats-district",
	Short: "Asset statistics grouped by district",
	Args:  cobra.NoArgs,
	RunE: withDB(func(cmd *cobra.Command, db *repository.SQLiteDB) error {
		stats, err := db.StatsByDistrict(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Stats("district", stats))
		return nil
	}),
}

func init() {
	queryAssetsCmd.Flags().StringVar(&queryDistrict, "district", "all", "district name or substring")
	queryAssetsCmd.Flags().StringVar(&queryRisk, "risk", "all", "risk level: low, medium, high, critical or all")
	queryAssetsCmd.Flags().IntVar(&queryLimit, "limit", repository.DefaultAssetLimit, "maximum rows")
	queryAlertsCmd.Flags().StringVar(&alertRisk, "risk", "critical", "asset risk level: low, medium, high, critical or all")

	queryCmd.AddCommand(queryAssetsCmd, queryAlertsCmd, queryStatsRiskCmd, queryStatsDistrictCmd)
	rootCmd.AddCommand(queryCmd)
}

// withDB opens the configured database for the duration of one query command.
func withDB(fn func(cmd *cobra.Command, db *repository.SQLiteDB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := repository.OpenExisting(cfg.DB.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd, db)
	}
}
