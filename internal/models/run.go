package models

import "time"

// Layouts for dates and timestamps in the database and CSV exports.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = time.RFC3339
)

// GenerationRun describes one batch that produced a Dataset.
type GenerationRun struct {
	ID            string
	Seed          int64
	ReferenceDate time.Time
	AssetCount    int
	SensorCount   int
	AlertCount    int
}

// Dataset is everything a single run writes: four entity tables plus run metadata.
type Dataset struct {
	Run     GenerationRun
	Zones   []Zone
	Assets  []Asset
	Sensors []Sensor
	Alerts  []Alert
}
