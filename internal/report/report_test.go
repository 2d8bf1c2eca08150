package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/repository"
)

func TestStats(t *testing.T) {
	out := Stats("risk level", []repository.GroupStats{
		{Key: "critical", TotalAssets: 12, AvgConditionScore: 38.24, TotalMaintenanceCost: 9_876_543},
	})

	assert.Contains(t, out, "risk level")
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "38.2")
	assert.Contains(t, out, "9876543")
}

func TestAssets(t *testing.T) {
	out := Assets([]repository.AssetSummary{{
		Name: "Al Maktoum Bridge", Type: models.AssetTypeBridge, District: "Deira",
		RiskLevel: models.RiskLevelHigh, ConditionScore: 51, NextInspectionDue: "2025-05-01",
	}})

	assert.Contains(t, out, "Al Maktoum Bridge")
	assert.Contains(t, out, "bridge")
	assert.Contains(t, out, "2025-05-01")
}

func TestAlerts(t *testing.T) {
	out := Alerts([]repository.AlertDetail{{
		Alert: models.Alert{
			ID: "ALT_0007", Type: models.AlertTypeCriticalCondition, Severity: models.AlertSeverityCritical,
			District: "Deira", CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), ResponseTimeRequiredH: 1,
		},
		AssetName: "Shindagha Tunnel",
		RiskLevel: models.RiskLevelCritical,
	}})

	assert.Contains(t, out, "ALT_0007")
	assert.Contains(t, out, "Shindagha Tunnel")
	assert.Contains(t, out, "1h")
}

func TestEmptyTablesStillHaveHeaders(t *testing.T) {
	assert.Contains(t, Alerts(nil), "severity")
	assert.Contains(t, Stats("district", nil), "district")
}
