package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

// AssetsByDistrict returns the worst-condition assets whose district contains
// opts.District, optionally restricted to one risk level.
func (s *SQLiteDB) AssetsByDistrict(ctx context.Context, opts AssetFilter) ([]AssetSummary, error) {
	query := `
		SELECT asset_name, asset_type, district, risk_level, daily_usage, maintenance_cost_aed,
		       construction_year, next_inspection_due, condition_score
		FROM infrastructure_assets
		WHERE 1=1`
	var args []any

	if d := strings.TrimSpace(opts.District); d != "" && d != filterAll {
		query += ` AND district LIKE '%' || ? || '%' ESCAPE '\'`
		args = append(args, escapeLike(d))
	}
	if opts.RiskLevel != "" && opts.RiskLevel != filterAll {
		query += " AND risk_level = ?"
		args = append(args, string(opts.RiskLevel))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultAssetLimit
	}
	query += " ORDER BY condition_score ASC, asset_id ASC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying assets by district: %w", err)
	}
	defer rows.Close()

	var results []AssetSummary
	for rows.Next() {
		var a AssetSummary
		if err := rows.Scan(&a.Name, &a.Type, &a.District, &a.RiskLevel, &a.DailyUsage, &a.MaintenanceCostAED,
			&a.ConstructionYear, &a.NextInspectionDue, &a.ConditionScore); err != nil {
			return nil, fmt.Errorf("error scanning asset row: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ActiveAlerts returns active alerts of high or critical severity, joined
// with their assets.
func (s *SQLiteDB) ActiveAlerts(ctx context.Context, opts AlertFilter) ([]AlertDetail, error) {
	query := `
		SELECT al.alert_id, al.asset_id, al.alert_type, al.severity, al.description, al.created_at, al.status,
		       al.zone_id, al.district, al.estimated_cost_aed, al.response_time_required_hours,
		       a.asset_name, a.asset_type, a.risk_level
		FROM alerts al
		JOIN infrastructure_assets a ON al.asset_id = a.asset_id
		WHERE al.severity IN ('high', 'critical') AND al.status = 'active'`
	var args []any

	if opts.RiskLevel != "" && opts.RiskLevel != filterAll {
		query += " AND a.risk_level = ?"
		args = append(args, string(opts.RiskLevel))
	}
	query += " ORDER BY al.alert_id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying active alerts: %w", err)
	}
	defer rows.Close()

	var results []AlertDetail
	for rows.Next() {
		var (
			d         AlertDetail
			createdAt string
		)
		err := rows.Scan(&d.Alert.ID, &d.Alert.AssetID, &d.Alert.Type, &d.Alert.Severity, &d.Alert.Description,
			&createdAt, &d.Alert.Status, &d.Alert.ZoneID, &d.Alert.District, &d.Alert.EstimatedCostAED,
			&d.Alert.ResponseTimeRequiredH, &d.AssetName, &d.AssetType, &d.RiskLevel)
		if err != nil {
			return nil, fmt.Errorf("error scanning alert row: %w", err)
		}
		if d.Alert.CreatedAt, err = time.Parse(models.TimestampLayout, createdAt); err != nil {
			return nil, fmt.Errorf("error parsing created_at for alert %s: %w", d.Alert.ID, err)
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

func (s *SQLiteDB) StatsByRisk(ctx context.Context) ([]GroupStats, error) {
	return s.groupStats(ctx, "risk_level")
}

func (s *SQLiteDB) StatsByDistrict(ctx context.Context) ([]GroupStats, error) {
	return s.groupStats(ctx, "district")
}

// column is always one of the fixed names above, never user input.
func (s *SQLiteDB) groupStats(ctx context.Context, column string) ([]GroupStats, error) {
	query := fmt.Sprintf(`
		SELECT %[1]s,
		       COUNT(*) AS total_assets,
		       AVG(condition_score) AS avg_condition_score,
		       SUM(maintenance_cost_aed) AS total_maintenance_cost
		FROM infrastructure_assets
		GROUP BY %[1]s
		ORDER BY %[1]s`, column)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying stats by %s: %w", column, err)
	}
	defer rows.Close()

	var results []GroupStats
	for rows.Next() {
		var g GroupStats
		if err := rows.Scan(&g.Key, &g.TotalAssets, &g.AvgConditionScore, &g.TotalMaintenanceCost); err != nil {
			return nil, fmt.Errorf("error scanning stats row: %w", err)
		}
		results = append(results, g)
	}
	return results, rows.Err()
}

// OrphanCount counts sensors and alerts whose asset_id is missing from the
// assets table.
func (s *SQLiteDB) OrphanCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sensor_data WHERE asset_id NOT IN (SELECT asset_id FROM infrastructure_assets)) +
			(SELECT COUNT(*) FROM alerts WHERE asset_id NOT IN (SELECT asset_id FROM infrastructure_assets))`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting orphaned references: %w", err)
	}
	return n, nil
}

func (s *SQLiteDB) LatestRun(ctx context.Context) (*models.GenerationRun, error) {
	var (
		run     models.GenerationRun
		refDate string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id, seed, reference_date, asset_count, sensor_count, alert_count
		FROM generation_runs
		ORDER BY rowid DESC
		LIMIT 1`,
	).Scan(&run.ID, &run.Seed, &refDate, &run.AssetCount, &run.SensorCount, &run.AlertCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying generation run: %w", err)
	}

	if run.ReferenceDate, err = time.Parse(models.DateLayout, refDate); err != nil {
		return nil, fmt.Errorf("error parsing reference date: %w", err)
	}
	return &run, nil
}

// CountRows returns the number of rows in one of the dataset tables.
func (s *SQLiteDB) CountRows(ctx context.Context, table string) (int, error) {
	if !isDatasetTable(table) {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

func isDatasetTable(table string) bool {
	for _, t := range replaceOrder {
		if t == table {
			return true
		}
	}
	return false
}
