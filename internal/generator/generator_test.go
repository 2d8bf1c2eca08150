package generator

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr1hm/dubai-infra-gen/internal/inventory"
	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/zones"
)

var refTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestGenerator() *Generator {
	return New(42, refTime)
}

func TestAssets_InventoryPlusSyntheticFill(t *testing.T) {
	assets := newTestGenerator().Assets(500)
	require.Len(t, assets, 500)

	n := inventory.Len()
	entries := inventory.Entries()
	for i, e := range entries {
		assert.Equal(t, e.Name, assets[i].Name)
		assert.Equal(t, e.DailyUsage, assets[i].DailyUsage)
	}

	synthetic := assets[n:]
	assert.Len(t, synthetic, 500-n)
	for i, a := range synthetic {
		assert.True(t, strings.HasSuffix(a.Name, " Section "+itoa(i+1)), a.Name)
	}
}

func TestAssets_FewerThanInventory(t *testing.T) {
	assets := newTestGenerator().Assets(10)
	require.Len(t, assets, 10)
	assert.Equal(t, "Sheikh Zayed Road E11 - Trade Centre", assets[0].Name)

	assert.Empty(t, newTestGenerator().Assets(0))
	assert.Empty(t, newTestGenerator().Assets(-3))
}

func TestAssets_ConditionAndRiskInvariants(t *testing.T) {
	assets := newTestGenerator().Assets(2000)
	n := inventory.Len()

	for i, a := range assets {
		lo := InventoryMinCondition
		if i >= n {
			lo = SyntheticMinCondition
		}
		assert.GreaterOrEqual(t, a.ConditionScore, lo, a.ID)
		assert.LessOrEqual(t, a.ConditionScore, 100, a.ID)
		assert.Equal(t, models.RiskLevelFor(a.ConditionScore), a.RiskLevel, a.ID)
		assert.Positive(t, a.MaintenanceCostAED, a.ID)
	}
}

func TestAssets_IDsAreSequentialAndUnique(t *testing.T) {
	assets := newTestGenerator().Assets(500)
	seen := map[string]bool{}

	for i, a := range assets {
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
		assert.Equal(t, assetID(a.Type, i+1), a.ID)
	}
	assert.Equal(t, "ROAD_001", assets[0].ID)
	assert.Equal(t, "BRID_026", assets[25].ID)
	assert.Equal(t, "TUNN_057", assets[56].ID)
}

func TestAssets_ZoneAssignment(t *testing.T) {
	assets := newTestGenerator().Assets(300)
	n := inventory.Len()

	for i, a := range assets {
		z, ok := zones.ByID(a.ZoneID)
		require.True(t, ok, a.ID)
		assert.Equal(t, z.Name, a.District)

		if i < n {
			assert.Equal(t, zones.Nearest(a.Latitude, a.Longitude).ID, a.ZoneID, a.ID)
			continue
		}
		assert.GreaterOrEqual(t, a.Latitude, zones.MinLatitude)
		assert.LessOrEqual(t, a.Latitude, zones.MaxLatitude)
		assert.GreaterOrEqual(t, a.Longitude, zones.MinLongitude)
		assert.LessOrEqual(t, a.Longitude, zones.MaxLongitude)
		assert.Contains(t, []models.AssetType{models.AssetTypeRoad, models.AssetTypeUtility, models.AssetTypeBridge}, a.Type)
		assert.Contains(t, []models.Criticality{models.CriticalityLow, models.CriticalityMedium}, a.Criticality)
	}
}

func TestAssets_SyntheticJitterAroundZoneCenter(t *testing.T) {
	assets := newTestGenerator().Assets(500)
	const eps = 1e-6

	for _, a := range assets[inventory.Len():] {
		z, ok := zones.ByID(a.ZoneID)
		require.True(t, ok, a.ID)

		d := math.Hypot(a.Latitude-z.CenterLat, a.Longitude-z.CenterLng)
		assert.LessOrEqual(t, d, 0.015+eps, "%s is %.6f degrees from %s", a.ID, d, z.ID)
		assert.GreaterOrEqual(t, d, 0.005-eps, "%s is %.6f degrees from %s", a.ID, d, z.ID)
	}
}

func TestAssets_TagDrivenConstructionYears(t *testing.T) {
	// Several seeds so the ranged rules are exercised more than once.
	for seed := int64(1); seed <= 5; seed++ {
		assets := New(seed, refTime).Assets(inventory.Len())
		byName := map[string]models.Asset{}
		for _, a := range assets {
			byName[a.Name] = a
		}

		assert.Equal(t, 2007, byName["Business Bay Bridge"].ConstructionYear)

		metro := byName["Dubai Metro Red Line Tunnel BurJuman"].ConstructionYear
		assert.True(t, metro >= 2009 && metro <= 2020, "metro year %d", metro)

		canal := byName["Dubai Water Canal Bridge Al Wasl"].ConstructionYear
		assert.True(t, canal >= 2013 && canal <= 2016, "canal year %d", canal)

		szr := byName["Sheikh Zayed Road E11 - Trade Centre"].ConstructionYear
		assert.True(t, szr >= 1998 && szr <= 2005, "szr year %d", szr)
	}
}

func TestAssets_StrategicCriticality(t *testing.T) {
	assets := newTestGenerator().Assets(inventory.Len())
	for i, e := range inventory.Entries() {
		if e.Type == models.AssetTypeBridge || e.Type == models.AssetTypeTunnel || e.Has(inventory.TagDEWA) {
			assert.Contains(t, []models.Criticality{models.CriticalityHigh, models.CriticalityCritical}, assets[i].Criticality, e.Name)
		}
	}
}

func TestAssets_InspectionDates(t *testing.T) {
	g := newTestGenerator()
	assets := g.Assets(500)

	for _, a := range assets {
		assert.True(t, a.LastInspection.Before(g.today), a.ID)
		assert.True(t, a.NextInspectionDue.After(a.LastInspection), a.ID)
	}
}

func TestInventoryCondition_RuleOrder(t *testing.T) {
	veryHigh := models.Zone{Density: models.DensityVeryHigh}
	medium := models.Zone{Density: models.DensityMedium}

	tests := []struct {
		name  string
		entry inventory.Entry
		zone  models.Zone
		want  conditionDist
	}{
		{"tunnel", inventory.Entry{Type: models.AssetTypeTunnel}, medium, conditionDist{85, 12}},
		{"metro", inventory.Entry{Type: models.AssetTypeRoad, Tags: inventory.TagMetro}, medium, conditionDist{85, 12}},
		{"sheikh zayed bridge", inventory.Entry{Type: models.AssetTypeBridge, Tags: inventory.TagSheikhZayed}, medium, conditionDist{78, 15}},
		{"difc road", inventory.Entry{Type: models.AssetTypeRoad, Tags: inventory.TagDIFC}, veryHigh, conditionDist{78, 15}},
		{"plain bridge", inventory.Entry{Type: models.AssetTypeBridge}, veryHigh, conditionDist{72, 18}},
		{"premium zone road", inventory.Entry{Type: models.AssetTypeRoad}, veryHigh, conditionDist{75, 16}},
		{"standard road", inventory.Entry{Type: models.AssetTypeRoad}, medium, conditionDist{68, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventoryCondition(tt.entry, tt.zone))
		})
	}
}

func TestInventoryCost_RuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		entry inventory.Entry
		want  costRange
	}{
		{"major utility", inventory.Entry{Type: models.AssetTypeUtility, DailyUsage: 2_500_000}, costRange{2_000_000, 8_000_000}},
		{"busy utility", inventory.Entry{Type: models.AssetTypeUtility, DailyUsage: 500_000}, costRange{800_000, 3_000_000}},
		{"tunnel", inventory.Entry{Type: models.AssetTypeTunnel, DailyUsage: 10_000}, costRange{800_000, 3_000_000}},
		{"bridge", inventory.Entry{Type: models.AssetTypeBridge, DailyUsage: 10_000}, costRange{500_000, 2_500_000}},
		{"major road", inventory.Entry{Type: models.AssetTypeRoad, DailyUsage: 120_000}, costRange{300_000, 1_200_000}},
		{"standard road", inventory.Entry{Type: models.AssetTypeRoad, DailyUsage: 40_000}, costRange{100_000, 600_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventoryCost(tt.entry))
		})
	}
}

func TestSensors_CountsAndReferences(t *testing.T) {
	g := newTestGenerator()
	assets := g.Assets(500)
	sensors := g.Sensors(assets)

	perAsset := map[string]int{}
	for _, s := range sensors {
		perAsset[s.AssetID]++
	}

	for _, a := range assets {
		n := perAsset[a.ID]
		switch {
		case a.Type == models.AssetTypeBridge:
			assert.True(t, n >= 3 && n <= 5, "%s has %d sensors", a.ID, n)
		case a.Criticality == models.CriticalityHigh || a.Criticality == models.CriticalityCritical:
			assert.True(t, n >= 2 && n <= 4, "%s has %d sensors", a.ID, n)
		default:
			assert.True(t, n >= 1 && n <= 3, "%s has %d sensors", a.ID, n)
		}
	}

	var total int
	for _, n := range perAsset {
		total += n
	}
	assert.Equal(t, len(sensors), total, "every sensor references a generated asset")
}

func TestSensors_PlacedNearAsset(t *testing.T) {
	g := newTestGenerator()
	assets := g.Assets(200)
	sensors := g.Sensors(assets)

	byID := make(map[string]models.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	const eps = 1e-9
	for _, s := range sensors {
		a := byID[s.AssetID]
		assert.LessOrEqual(t, math.Abs(s.Latitude-a.Latitude), 0.001+eps, s.ID)
		assert.LessOrEqual(t, math.Abs(s.Longitude-a.Longitude), 0.001+eps, s.ID)
	}
}

func TestSensors_ReadingsFollowTypeTable(t *testing.T) {
	g := newTestGenerator()
	sensors := g.Sensors(g.Assets(300))
	require.NotEmpty(t, sensors)

	ranges := map[models.SensorType][2]float64{
		models.SensorTypeVibration:      {0.5, 15},
		models.SensorTypeTemperature:    {28, 52},
		models.SensorTypeTrafficCount:   {50, 8000},
		models.SensorTypeCrackDetection: {0, 45},
		models.SensorTypeWaterLevel:     {0, 25},
		models.SensorTypeAirQuality:     {15, 150},
	}

	for i, s := range sensors {
		r := ranges[s.Type]
		assert.GreaterOrEqual(t, s.ReadingValue, r[0], s.ID)
		assert.LessOrEqual(t, s.ReadingValue, r[1], s.ID)
		assert.Equal(t, sensorSpecs[s.Type].threshold, s.AlertThreshold)
		assert.Equal(t, sensorSpecs[s.Type].unit, s.Unit)
		assert.Equal(t, "SEN_"+pad4(i+1), s.ID)

		assert.False(t, s.ReadingTimestamp.After(g.now), s.ID)
		assert.True(t, s.ReadingTimestamp.After(g.now.Add(-24*time.Hour-time.Second)), s.ID)

		if s.Status == models.SensorStatusOnline {
			assert.GreaterOrEqual(t, s.BatteryLevel, 15)
		} else {
			assert.LessOrEqual(t, s.BatteryLevel, 30)
		}
	}
}

func TestAlerts_SeverityStatusAndReferences(t *testing.T) {
	g := newTestGenerator()
	assets := g.Assets(500)
	alerts := g.Alerts(assets, 1000)
	require.Len(t, alerts, 1000)

	byID := map[string]models.Asset{}
	for _, a := range assets {
		byID[a.ID] = a
	}

	for _, al := range alerts {
		a, ok := byID[al.AssetID]
		require.True(t, ok, "alert %s references unknown asset %s", al.ID, al.AssetID)
		assert.Equal(t, a.ZoneID, al.ZoneID)
		assert.Equal(t, a.District, al.District)
		assert.Contains(t, al.Description, a.Name)
		assert.Equal(t, al.Severity.ResponseHours(), al.ResponseTimeRequiredH)

		if al.Type == models.AlertTypeCriticalCondition || a.RiskLevel == models.RiskLevelCritical {
			assert.Contains(t, []models.AlertSeverity{models.AlertSeverityHigh, models.AlertSeverityCritical}, al.Severity, al.ID)
		}
		if al.Severity == models.AlertSeverityCritical {
			assert.NotEqual(t, models.AlertStatusResolved, al.Status, al.ID)
		}
	}
}

func TestAlerts_NoAssets(t *testing.T) {
	assert.Empty(t, newTestGenerator().Alerts(nil, 150))
}

func TestDataset_SameSeedIsIdentical(t *testing.T) {
	a := New(42, refTime).Dataset(500, 150)
	b := New(42, refTime).Dataset(500, 150)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("datasets differ for the same seed (-first +second):\n%s", diff)
	}

	c := New(7, refTime).Dataset(500, 150)
	assert.NotEqual(t, a.Assets, c.Assets)
}

func TestNewWithRand_MatchesSeededNew(t *testing.T) {
	a := New(42, refTime).Assets(80)
	b := NewWithRand(rand.New(rand.NewPCG(42, pcgStream)), refTime).Assets(80)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("assets differ (-New +NewWithRand):\n%s", diff)
	}
}

func TestPick_RespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	options := []weighted[string]{{"never", 0}, {"always", 1}}

	for range 100 {
		assert.Equal(t, "always", pick(rng, options))
	}
}

func TestIntBetween_Inclusive(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	seen := map[int]bool{}
	for range 1000 {
		v := intBetween(rng, 1, 3)
		require.True(t, v >= 1 && v <= 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestAssetID(t *testing.T) {
	assert.Equal(t, "UTIL_042", assetID(models.AssetTypeUtility, 42))
	assert.Equal(t, "ROAD_1234", assetID(models.AssetTypeRoad, 1234))
}
