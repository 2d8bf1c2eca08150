package generator

import (
	"fmt"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

var alertTypes = []weighted[models.AlertType]{
	{models.AlertTypeMaintenanceDue, 0.35},
	{models.AlertTypeHighUsage, 0.25},
	{models.AlertTypeSensorFault, 0.15},
	{models.AlertTypeCriticalCondition, 0.15},
	{models.AlertTypeEnvironmentalHazard, 0.10},
}

var alertDescriptions = map[models.AlertType]string{
	models.AlertTypeMaintenanceDue:      "Scheduled maintenance required for %s",
	models.AlertTypeHighUsage:           "Usage levels exceeded normal capacity on %s",
	models.AlertTypeSensorFault:         "Sensor malfunction detected on %s",
	models.AlertTypeCriticalCondition:   "Critical condition detected: %s requires immediate attention",
	models.AlertTypeEnvironmentalHazard: "Environmental conditions affecting %s",
}

// Alerts raises count alerts against assets sampled with replacement.
func (g *Generator) Alerts(assets []models.Asset, count int) []models.Alert {
	if len(assets) == 0 || count <= 0 {
		return nil
	}

	alerts := make([]models.Alert, 0, count)
	for i := 1; i <= count; i++ {
		a := &assets[g.rng.IntN(len(assets))]
		alerts = append(alerts, g.alert(a, i))
	}

	return alerts
}

func (g *Generator) alert(a *models.Asset, seq int) models.Alert {
	alertType := pick(g.rng, alertTypes)
	severity := g.severity(a, alertType)
	createdAt := g.hoursAgo(uniform(g.rng, 0, 720))
	status := g.alertStatus(severity)

	return models.Alert{
		ID:                    fmt.Sprintf("ALT_%04d", seq),
		AssetID:               a.ID,
		Type:                  alertType,
		Severity:              severity,
		Description:           fmt.Sprintf(alertDescriptions[alertType], a.Name),
		CreatedAt:             createdAt,
		Status:                status,
		ZoneID:                a.ZoneID,
		District:              a.District,
		EstimatedCostAED:      intBetween(g.rng, 10_000, 500_000),
		ResponseTimeRequiredH: severity.ResponseHours(),
	}
}

func (g *Generator) severity(a *models.Asset, t models.AlertType) models.AlertSeverity {
	switch {
	case t == models.AlertTypeCriticalCondition || a.RiskLevel == models.RiskLevelCritical:
		return pick(g.rng, []weighted[models.AlertSeverity]{
			{models.AlertSeverityHigh, 0.3},
			{models.AlertSeverityCritical, 0.7},
		})
	case t == models.AlertTypeEnvironmentalHazard:
		return pick(g.rng, []weighted[models.AlertSeverity]{
			{models.AlertSeverityMedium, 0.6},
			{models.AlertSeverityHigh, 0.4},
		})
	case a.RiskLevel == models.RiskLevelHigh:
		return pick(g.rng, []weighted[models.AlertSeverity]{
			{models.AlertSeverityMedium, 0.4},
			{models.AlertSeverityHigh, 0.6},
		})
	default:
		return pick(g.rng, []weighted[models.AlertSeverity]{
			{models.AlertSeverityLow, 0.6},
			{models.AlertSeverityMedium, 0.4},
		})
	}
}

// Critical alerts are never generated as resolved.
func (g *Generator) alertStatus(severity models.AlertSeverity) models.AlertStatus {
	if severity == models.AlertSeverityCritical {
		return pick(g.rng, []weighted[models.AlertStatus]{
			{models.AlertStatusActive, 0.7},
			{models.AlertStatusInvestigating, 0.3},
		})
	}
	return pick(g.rng, []weighted[models.AlertStatus]{
		{models.AlertStatusActive, 0.5},
		{models.AlertStatusInvestigating, 0.3},
		{models.AlertStatusResolved, 0.2},
	})
}
