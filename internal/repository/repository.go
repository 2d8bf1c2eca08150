package repository

import (
	"context"
	"errors"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

var ErrNotFound = errors.New("not found")

// AssetFilter narrows AssetsByDistrict. Empty or "all" fields do not filter.
type AssetFilter struct {
	District  string // substring match on the district name
	RiskLevel models.RiskLevel
	Limit     int // defaults to DefaultAssetLimit
}

// AlertFilter narrows ActiveAlerts by the risk level of the alerted asset.
type AlertFilter struct {
	RiskLevel models.RiskLevel
}

const (
	DefaultAssetLimit = 10
	filterAll         = "all"
)

// AssetSummary is the per-asset row returned by district queries.
type AssetSummary struct {
	Name               string
	Type               models.AssetType
	District           string
	RiskLevel          models.RiskLevel
	DailyUsage         int
	MaintenanceCostAED int
	ConstructionYear   int
	NextInspectionDue  string
	ConditionScore     int
}

// AlertDetail is an alert joined with the asset it references.
type AlertDetail struct {
	Alert     models.Alert
	AssetName string
	AssetType models.AssetType
	RiskLevel models.RiskLevel
}

// GroupStats aggregates assets sharing a risk level or district.
type GroupStats struct {
	Key                  string
	TotalAssets          int
	AvgConditionScore    float64
	TotalMaintenanceCost int64
}

type DatasetWriter interface {
	ReplaceAll(ctx context.Context, ds models.Dataset) error
}

type InfrastructureReader interface {
	AssetsByDistrict(ctx context.Context, opts AssetFilter) ([]AssetSummary, error)
	ActiveAlerts(ctx context.Context, opts AlertFilter) ([]AlertDetail, error)
	StatsByRisk(ctx context.Context) ([]GroupStats, error)
	StatsByDistrict(ctx context.Context) ([]GroupStats, error)
	OrphanCount(ctx context.Context) (int, error)
	LatestRun(ctx context.Context) (*models.GenerationRun, error)
	CountRows(ctx context.Context, table string) (int, error)
}

type Store interface {
	DatasetWriter
	InfrastructureReader
	Close() error
}

var _ Store = (*SQLiteDB)(nil)
