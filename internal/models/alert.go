package models

import "time"

type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityCritical AlertSeverity = "critical"
)

// ResponseHours is the response window required for an alert of this severity.
func (s AlertSeverity) ResponseHours() int {
	switch s {
	case AlertSeverityCritical:
		return 1
	case AlertSeverityHigh:
		return 4
	default:
		return 24
	}
}

type AlertType string

const (
	AlertTypeMaintenanceDue      AlertType = "maintenance_due"
	AlertTypeHighUsage           AlertType = "high_usage"
	AlertTypeSensorFault         AlertType = "sensor_fault"
	AlertTypeCriticalCondition   AlertType = "critical_condition"
	AlertTypeEnvironmentalHazard AlertType = "environmental_hazard"
)

type AlertStatus string

const (
	AlertStatusActive        AlertStatus = "active"
	AlertStatusInvestigating AlertStatus = "investigating"
	AlertStatusResolved      AlertStatus = "resolved"
)

type Alert struct {
	ID                    string
	AssetID               string
	Type                  AlertType
	Severity              AlertSeverity
	Description           string
	CreatedAt             time.Time
	Status                AlertStatus
	ZoneID                string // copied from the asset at generation time
	District              string
	EstimatedCostAED      int
	ResponseTimeRequiredH int
}
