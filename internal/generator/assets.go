package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/mr1hm/dubai-infra-gen/internal/inventory"
	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/zones"
)

// Condition bounds per pass.
const (
	InventoryMinCondition = 25
	SyntheticMinCondition = 30
)

type conditionDist struct {
	mean, stddev float64
}

type costRange struct {
	lo, hi int
}

// Assets emits one asset per inventory entry, then fills the remainder of
// count with synthetic assets placed around zone centers. The result has
// exactly count elements (none when count <= 0).
func (g *Generator) Assets(count int) []models.Asset {
	if count <= 0 {
		return nil
	}

	entries := inventory.Entries()
	assets := make([]models.Asset, 0, max(count, len(entries)))
	seq := 1

	for _, e := range entries {
		assets = append(assets, g.inventoryAsset(e, seq))
		seq++
	}

	for i := 1; i <= count-len(entries); i++ {
		assets = append(assets, g.syntheticAsset(i, seq))
		seq++
	}

	return assets[:count]
}

func (g *Generator) inventoryAsset(e inventory.Entry, seq int) models.Asset {
	zone := zones.Nearest(e.Latitude, e.Longitude)

	dist := inventoryCondition(e, zone)
	condition := models.ClampCondition(normal(g.rng, dist.mean, dist.stddev), InventoryMinCondition, models.MaxConditionScore)

	cost := inventoryCost(e)
	maintenance := models.AdjustedMaintenanceCost(intBetween(g.rng, cost.lo, cost.hi), condition)

	lastInspection := g.daysAgo(g.inspectionInterval(e))
	criticality := g.inventoryCriticality(e, zone)
	year := g.constructionYear(e)

	return models.Asset{
		ID:                 assetID(e.Type, seq),
		Name:               e.Name,
		Type:               e.Type,
		Latitude:           e.Latitude,
		Longitude:          e.Longitude,
		District:           zone.Name,
		ZoneID:             zone.ID,
		ConditionScore:     condition,
		RiskLevel:          models.RiskLevelFor(condition),
		LastInspection:     lastInspection,
		DailyUsage:         e.DailyUsage,
		MaintenanceCostAED: maintenance,
		Criticality:        criticality,
		ConstructionYear:   year,
		NextInspectionDue:  lastInspection.AddDate(0, 0, intBetween(g.rng, 60, 180)),
	}
}

func inventoryCondition(e inventory.Entry, zone models.Zone) conditionDist {
	switch {
	case e.Type == models.AssetTypeTunnel || e.Has(inventory.TagMetro):
		return conditionDist{85, 12}
	case e.Has(inventory.TagSheikhZayed | inventory.TagDIFC):
		return conditionDist{78, 15}
	case e.Type == models.AssetTypeBridge:
		return conditionDist{72, 18}
	case zone.Density == models.DensityVeryHigh:
		return conditionDist{75, 16}
	default:
		return conditionDist{68, 20}
	}
}

func inventoryCost(e inventory.Entry) costRange {
	switch {
	case e.Type == models.AssetTypeUtility && e.DailyUsage > 1_000_000:
		return costRange{2_000_000, 8_000_000}
	case e.Type == models.AssetTypeTunnel || e.DailyUsage > 200_000:
		return costRange{800_000, 3_000_000}
	case e.Type == models.AssetTypeBridge:
		return costRange{500_000, 2_500_000}
	case e.DailyUsage > 100_000:
		return costRange{300_000, 1_200_000}
	default:
		return costRange{100_000, 600_000}
	}
}

// inspectionInterval is the number of days since the last inspection.
func (g *Generator) inspectionInterval(e inventory.Entry) int {
	switch {
	case e.DailyUsage > 200_000 || e.Type == models.AssetTypeBridge || e.Type == models.AssetTypeTunnel:
		return intBetween(g.rng, 15, 90)
	case e.DailyUsage > 100_000:
		return intBetween(g.rng, 30, 120)
	default:
		return intBetween(g.rng, 60, 180)
	}
}

func (g *Generator) inventoryCriticality(e inventory.Entry, zone models.Zone) models.Criticality {
	strategic := inventory.TagSheikhZayed | inventory.TagDEWA | inventory.TagDowntown | inventory.TagDIFC

	switch {
	case e.DailyUsage > 200_000 || e.Type == models.AssetTypeBridge || e.Type == models.AssetTypeTunnel || e.Has(strategic):
		return pick(g.rng, []weighted[models.Criticality]{
			{models.CriticalityHigh, 0.6},
			{models.CriticalityCritical, 0.4},
		})
	case e.DailyUsage > 80_000 || zone.Density == models.DensityVeryHigh:
		return pick(g.rng, []weighted[models.Criticality]{
			{models.CriticalityMedium, 0.5},
			{models.CriticalityHigh, 0.5},
		})
	default:
		return pick(g.rng, []weighted[models.Criticality]{
			{models.CriticalityLow, 0.6},
			{models.CriticalityMedium, 0.4},
		})
	}
}

func (g *Generator) constructionYear(e inventory.Entry) int {
	switch {
	case e.Has(inventory.TagMetro):
		return intBetween(g.rng, 2009, 2020)
	case e.Has(inventory.TagWaterCanal):
		return intBetween(g.rng, 2013, 2016)
	case e.Has(inventory.TagDowntown | inventory.TagDIFC):
		return intBetween(g.rng, 2000, 2010)
	case e.Type == models.AssetTypeBridge && e.Has(inventory.TagBusinessBay):
		return 2007
	case e.Has(inventory.TagSheikhZayed):
		return intBetween(g.rng, 1998, 2005)
	default:
		return intBetween(g.rng, 1995, 2020)
	}
}

var syntheticTypes = []weighted[models.AssetType]{
	{models.AssetTypeRoad, 0.7},
	{models.AssetTypeUtility, 0.25},
	{models.AssetTypeBridge, 0.05},
}

// syntheticAsset places a filler asset within 0.005-0.015 degrees of a
// randomly chosen zone center. n numbers the synthetic section names.
func (g *Generator) syntheticAsset(n, seq int) models.Asset {
	zone := choose(g.rng, zones.All())
	assetType := pick(g.rng, syntheticTypes)

	radius := uniform(g.rng, 0.005, 0.015)
	angle := uniform(g.rng, 0, 2*math.Pi)
	center := zone.Center()
	pos := zones.Clip(models.Coordinates{
		Latitude:  center.Latitude + radius*math.Cos(angle),
		Longitude: center.Longitude + radius*math.Sin(angle),
	})

	condition := models.ClampCondition(normal(g.rng, 70, 18), SyntheticMinCondition, models.MaxConditionScore)
	lastInspection := g.daysAgo(intBetween(g.rng, 30, 180))
	usage := intBetween(g.rng, 5_000, 80_000)
	maintenance := models.AdjustedMaintenanceCost(intBetween(g.rng, 80_000, 500_000), condition)
	criticality := pick(g.rng, []weighted[models.Criticality]{
		{models.CriticalityLow, 0.7},
		{models.CriticalityMedium, 0.3},
	})
	year := intBetween(g.rng, 2000, 2022)

	return models.Asset{
		ID:                 assetID(assetType, seq),
		Name:               fmt.Sprintf("%s %s Section %d", zone.Name, g.title.String(string(assetType)), n),
		Type:               assetType,
		Latitude:           round(pos.Latitude, 6),
		Longitude:          round(pos.Longitude, 6),
		District:           zone.Name,
		ZoneID:             zone.ID,
		ConditionScore:     condition,
		RiskLevel:          models.RiskLevelFor(condition),
		LastInspection:     lastInspection,
		DailyUsage:         usage,
		MaintenanceCostAED: maintenance,
		Criticality:        criticality,
		ConstructionYear:   year,
		NextInspectionDue:  g.today.AddDate(0, 0, intBetween(g.rng, 30, 120)),
	}
}

// assetID is the first four letters of the type, upper-cased, plus a
// zero-padded sequence: ROAD_001, BRID_026.
func assetID(t models.AssetType, seq int) string {
	prefix := strings.ToUpper(string(t))
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	return fmt.Sprintf("%s_%03d", prefix, seq)
}
