package models

import "time"

type SensorType string

const (
	SensorTypeVibration      SensorType = "vibration"
	SensorTypeTemperature    SensorType = "temperature"
	SensorTypeTrafficCount   SensorType = "traffic_count"
	SensorTypeCrackDetection SensorType = "crack_detection"
	SensorTypeWaterLevel     SensorType = "water_level"
	SensorTypeAirQuality     SensorType = "air_quality"
)

type SensorStatus string

const (
	SensorStatusOnline      SensorStatus = "online"
	SensorStatusOffline     SensorStatus = "offline"
	SensorStatusMaintenance SensorStatus = "maintenance"
)

type Sensor struct {
	ID               string
	AssetID          string
	Type             SensorType
	Latitude         float64
	Longitude        float64
	ReadingValue     float64
	ReadingTimestamp time.Time
	AlertThreshold   float64
	Unit             string
	Status           SensorStatus
	InstallationDate time.Time
	BatteryLevel     int
}

// ExceedsThreshold reports whether the last reading is above the alert threshold.
// Status is sampled independently, so an online sensor may still exceed it.
func (s *Sensor) ExceedsThreshold() bool {
	return s.ReadingValue > s.AlertThreshold
}
