package models

import "time"

type AssetType string

const (
	AssetTypeRoad    AssetType = "road"
	AssetTypeBridge  AssetType = "bridge"
	AssetTypeUtility AssetType = "utility"
	AssetTypeTunnel  AssetType = "tunnel"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

const (
	MinConditionScore = 0
	MaxConditionScore = 100
)

type Asset struct {
	ID                 string
	Name               string
	Type               AssetType
	Latitude           float64
	Longitude          float64
	District           string // name of the assigned zone
	ZoneID             string
	ConditionScore     int
	RiskLevel          RiskLevel
	LastInspection     time.Time
	DailyUsage         int
	MaintenanceCostAED int
	Criticality        Criticality
	ConstructionYear   int
	NextInspectionDue  time.Time
}

// RiskLevelFor bands a condition score: >=80 low, >=65 medium, >=45 high, else critical.
func RiskLevelFor(condition int) RiskLevel {
	switch {
	case condition >= 80:
		return RiskLevelLow
	case condition >= 65:
		return RiskLevelMedium
	case condition >= 45:
		return RiskLevelHigh
	default:
		return RiskLevelCritical
	}
}

// ClampCondition truncates a sampled score toward zero and clamps it to [lo, hi].
func ClampCondition(sample float64, lo, hi int) int {
	score := int(sample)
	if score < lo {
		return lo
	}
	if score > hi {
		return hi
	}
	return score
}

// AdjustedMaintenanceCost scales a base cost by 1 + (100-condition)/200.
func AdjustedMaintenanceCost(base, condition int) int {
	multiplier := 1.0 + float64(MaxConditionScore-condition)/200
	return int(float64(base) * multiplier)
}
