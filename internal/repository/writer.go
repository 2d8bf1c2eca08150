package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

// Children before parents, so deletes never trip a foreign key.
var replaceOrder = []string{"alerts", "sensor_data", "infrastructure_assets", "dubai_zones", "generation_runs"}

// ReplaceAll clears every table and writes ds in a single transaction.
func (s *SQLiteDB) ReplaceAll(ctx context.Context, ds models.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range replaceOrder {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("error while clearing %s: %w", table, err)
		}
	}

	if err := insertZones(ctx, tx, ds.Zones); err != nil {
		return err
	}
	if err := insertAssets(ctx, tx, ds.Assets); err != nil {
		return err
	}
	if err := insertSensors(ctx, tx, ds.Sensors); err != nil {
		return err
	}
	if err := insertAlerts(ctx, tx, ds.Alerts); err != nil {
		return err
	}
	if err := insertRun(ctx, tx, ds.Run); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error while committing dataset: %w", err)
	}
	return nil
}

func insertZones(ctx context.Context, tx *sql.Tx, zs []models.Zone) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dubai_zones (zone_id, zone_name, center_lat, center_lng, area_km2, population, infrastructure_density)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing zone insert: %w", err)
	}
	defer stmt.Close()

	for _, z := range zs {
		if _, err := stmt.ExecContext(ctx, z.ID, z.Name, z.CenterLat, z.CenterLng, z.AreaKm2, z.Population, string(z.Density)); err != nil {
			return fmt.Errorf("error inserting zone %s: %w", z.ID, err)
		}
	}
	return nil
}

func insertAssets(ctx context.Context, tx *sql.Tx, assets []models.Asset) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO infrastructure_assets (
			asset_id, asset_name, asset_type, latitude, longitude, district, zone_id,
			condition_score, risk_level, last_inspection, daily_usage, maintenance_cost_aed,
			criticality, construction_year, next_inspection_due
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing asset insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range assets {
		_, err := stmt.ExecContext(ctx,
			a.ID, a.Name, string(a.Type), a.Latitude, a.Longitude, a.District, a.ZoneID,
			a.ConditionScore, string(a.RiskLevel), a.LastInspection.Format(models.DateLayout), a.DailyUsage, a.MaintenanceCostAED,
			string(a.Criticality), a.ConstructionYear, a.NextInspectionDue.Format(models.DateLayout),
		)
		if err != nil {
			return fmt.Errorf("error inserting asset %s: %w", a.ID, err)
		}
	}
	return nil
}

func insertSensors(ctx context.Context, tx *sql.Tx, sensors []models.Sensor) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO sensor_data (
			sensor_id, asset_id, sensor_type, latitude, longitude, reading_value, reading_timestamp,
			alert_threshold, unit, status, installation_date, battery_level
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing sensor insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range sensors {
		_, err := stmt.ExecContext(ctx,
			s.ID, s.AssetID, string(s.Type), s.Latitude, s.Longitude, s.ReadingValue, s.ReadingTimestamp.Format(models.TimestampLayout),
			s.AlertThreshold, s.Unit, string(s.Status), s.InstallationDate.Format(models.DateLayout), s.BatteryLevel,
		)
		if err != nil {
			return fmt.Errorf("error inserting sensor %s: %w", s.ID, err)
		}
	}
	return nil
}

func insertAlerts(ctx context.Context, tx *sql.Tx, alerts []models.Alert) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO alerts (
			alert_id, asset_id, alert_type, severity, description, created_at, status,
			zone_id, district, estimated_cost_aed, response_time_required_hours
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing alert insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range alerts {
		_, err := stmt.ExecContext(ctx,
			a.ID, a.AssetID, string(a.Type), string(a.Severity), a.Description, a.CreatedAt.Format(models.TimestampLayout), string(a.Status),
			a.ZoneID, a.District, a.EstimatedCostAED, a.ResponseTimeRequiredH,
		)
		if err != nil {
			return fmt.Errorf("error inserting alert %s: %w", a.ID, err)
		}
	}
	return nil
}

func insertRun(ctx context.Context, tx *sql.Tx, run models.GenerationRun) error {
	if run.ID == "" {
		return nil
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO generation_runs (run_id, seed, reference_date, asset_count, sensor_count, alert_count)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.ReferenceDate.Format(models.DateLayout), run.AssetCount, run.SensorCount, run.AlertCount,
	)
	if err != nil {
		return fmt.Errorf("error inserting generation run %s: %w", run.ID, err)
	}
	return nil
}
