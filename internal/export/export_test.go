package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/dubai-infra-gen/internal/generator"
	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

var refTime = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV_TablesAndHeaders(t *testing.T) {
	dir := t.TempDir()
	ds := generator.New(42, refTime).Dataset(80, 25)

	files, err := WriteCSV(dir, ds)
	require.NoError(t, err)
	assert.Equal(t, []string{ZonesFile, AssetsFile, SensorsFile, AlertsFile}, files)

	tests := []struct {
		file   string
		header []string
		rows   int
	}{
		{ZonesFile, zoneHeader, len(ds.Zones)},
		{AssetsFile, assetHeader, len(ds.Assets)},
		{SensorsFile, sensorHeader, len(ds.Sensors)},
		{AlertsFile, alertHeader, len(ds.Alerts)},
	}
	for _, tt := range tests {
		records := readCSV(t, filepath.Join(dir, tt.file))
		require.NotEmpty(t, records, tt.file)
		assert.Equal(t, tt.header, records[0], tt.file)
		assert.Len(t, records[1:], tt.rows, tt.file)
	}
}

func TestWriteCSV_AssetRowFormatting(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	ds := models.Dataset{
		Assets: []models.Asset{{
			ID: "ROAD_001", Name: "Zabeel Road, north", Type: models.AssetTypeRoad,
			Latitude: 25.2285, Longitude: 55.297, District: "Jumeirah", ZoneID: "JM",
			ConditionScore: 71, RiskLevel: models.RiskLevelMedium, LastInspection: day,
			DailyUsage: 65000, MaintenanceCostAED: 123456, Criticality: models.CriticalityMedium,
			ConstructionYear: 2004, NextInspectionDue: day.AddDate(0, 0, 90),
		}},
	}

	_, err := WriteCSV(dir, ds)
	require.NoError(t, err)

	records := readCSV(t, filepath.Join(dir, AssetsFile))
	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"ROAD_001", "Zabeel Road, north", "road", "25.2285", "55.297", "Jumeirah", "JM",
		"71", "medium", "2025-01-02", "65000", "123456", "medium", "2004", "2025-04-02",
	}, records[1])
}

func TestWriteCSV_SameDatasetSameBytes(t *testing.T) {
	ds := generator.New(42, refTime).Dataset(120, 40)
	dirA, dirB := t.TempDir(), t.TempDir()

	_, err := WriteCSV(dirA, ds)
	require.NoError(t, err)
	_, err = WriteCSV(dirB, generator.New(42, refTime).Dataset(120, 40))
	require.NoError(t, err)

	for _, f := range []string{ZonesFile, AssetsFile, SensorsFile, AlertsFile} {
		a, err := os.ReadFile(filepath.Join(dirA, f))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, f))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(a, b), "%s differs between identical runs", f)
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := generator.New(42, refTime).Dataset(60, 10)
	ds.Run = models.GenerationRun{ID: "abc", Seed: 42, ReferenceDate: refTime}

	m := NewManifest(ds, "infra.db", []string{ZonesFile, AssetsFile})
	require.NoError(t, WriteManifest(dir, m))

	got, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, m, *got)
	assert.Equal(t, "2025-03-14", got.ReferenceDate)
	assert.Equal(t, 60, got.Counts.Assets)
	assert.Equal(t, 10, got.Counts.Zones)
}

func TestWriteCSV_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := WriteCSV(file, models.Dataset{})
	assert.Error(t, err)
}
