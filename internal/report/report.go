// Package report renders query results as terminal tables.
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/repository"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func render(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

func Assets(assets []repository.AssetSummary) string {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.Name, string(a.Type), a.District, string(a.RiskLevel), strconv.Itoa(a.ConditionScore),
			strconv.Itoa(a.DailyUsage), strconv.Itoa(a.MaintenanceCostAED), strconv.Itoa(a.ConstructionYear),
			a.NextInspectionDue,
		})
	}
	return render([]string{"asset", "type", "district", "risk", "condition", "daily usage", "maintenance aed", "built", "next inspection"}, rows)
}

func Alerts(alerts []repository.AlertDetail) string {
	rows := make([][]string, 0, len(alerts))
	for _, d := range alerts {
		rows = append(rows, []string{
			d.Alert.ID, d.AssetName, string(d.Alert.Type), string(d.Alert.Severity), string(d.RiskLevel),
			d.Alert.District, d.Alert.CreatedAt.Format(models.TimestampLayout),
			strconv.Itoa(d.Alert.ResponseTimeRequiredH) + "h",
		})
	}
	return render([]string{"alert", "asset", "type", "severity", "asset risk", "district", "created", "response"}, rows)
}

// Stats renders grouped asset statistics; keyName labels the group column.
func Stats(keyName string, stats []repository.GroupStats) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Key, strconv.Itoa(s.TotalAssets), fmt.Sprintf("%.1f", s.AvgConditionScore),
			strconv.FormatInt(s.TotalMaintenanceCost, 10),
		})
	}
	return render([]string{keyName, "assets", "avg condition", "maintenance aed"}, rows)
}
