// Package export writes a generated dataset to flat files: one CSV per table
// plus a YAML manifest describing the run.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

// File names, one per table.
const (
	ZonesFile   = "dubai_zones.csv"
	AssetsFile  = "infrastructure_assets.csv"
	SensorsFile = "sensor_data.csv"
	AlertsFile  = "alerts.csv"
)

var (
	zoneHeader   = []string{"zone_id", "zone_name", "center_lat", "center_lng", "area_km2", "population", "infrastructure_density"}
	assetHeader  = []string{"asset_id", "asset_name", "asset_type", "latitude", "longitude", "district", "zone_id", "condition_score", "risk_level", "last_inspection", "daily_usage", "maintenance_cost_aed", "criticality", "construction_year", "next_inspection_due"}
	sensorHeader = []string{"sensor_id", "asset_id", "sensor_type", "latitude", "longitude", "reading_value", "reading_timestamp", "alert_threshold", "unit", "status", "installation_date", "battery_level"}
	alertHeader  = []string{"alert_id", "asset_id", "alert_type", "severity", "description", "created_at", "status", "zone_id", "district", "estimated_cost_aed", "response_time_required_hours"}
)

type table struct {
	file   string
	header []string
	rows   [][]string
}

// WriteCSV writes the four entity tables into dir and returns the file names
// in write order.
func WriteCSV(dir string, ds models.Dataset) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating export dir: %w", err)
	}

	tables := []table{
		{ZonesFile, zoneHeader, mapRows(ds.Zones, zoneRecord)},
		{AssetsFile, assetHeader, mapRows(ds.Assets, assetRecord)},
		{SensorsFile, sensorHeader, mapRows(ds.Sensors, sensorRecord)},
		{AlertsFile, alertHeader, mapRows(ds.Alerts, alertRecord)},
	}

	files := make([]string, 0, len(tables))
	for _, t := range tables {
		if err := writeTable(filepath.Join(dir, t.file), t.header, t.rows); err != nil {
			return nil, fmt.Errorf("error exporting %s: %w", t.file, err)
		}
		files = append(files, t.file)
	}
	return files, nil
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func mapRows[T any](items []T, record func(*T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, record(&items[i]))
	}
	return rows
}

func zoneRecord(z *models.Zone) []string {
	return []string{
		z.ID, z.Name, formatFloat(z.CenterLat), formatFloat(z.CenterLng),
		formatFloat(z.AreaKm2), strconv.Itoa(z.Population), string(z.Density),
	}
}

func assetRecord(a *models.Asset) []string {
	return []string{
		a.ID, a.Name, string(a.Type), formatFloat(a.Latitude), formatFloat(a.Longitude),
		a.District, a.ZoneID, strconv.Itoa(a.ConditionScore), string(a.RiskLevel),
		a.LastInspection.Format(models.DateLayout), strconv.Itoa(a.DailyUsage),
		strconv.Itoa(a.MaintenanceCostAED), string(a.Criticality), strconv.Itoa(a.ConstructionYear),
		a.NextInspectionDue.Format(models.DateLayout),
	}
}

func sensorRecord(s *models.Sensor) []string {
	return []string{
		s.ID, s.AssetID, string(s.Type), formatFloat(s.Latitude), formatFloat(s.Longitude),
		formatFloat(s.ReadingValue), s.ReadingTimestamp.Format(models.TimestampLayout),
		formatFloat(s.AlertThreshold), s.Unit, string(s.Status),
		s.InstallationDate.Format(models.DateLayout), strconv.Itoa(s.BatteryLevel),
	}
}

func alertRecord(a *models.Alert) []string {
	return []string{
		a.ID, a.AssetID, string(a.Type), string(a.Severity), a.Description,
		a.CreatedAt.Format(models.TimestampLayout), string(a.Status), a.ZoneID, a.District,
		strconv.Itoa(a.EstimatedCostAED), strconv.Itoa(a.ResponseTimeRequiredH),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
