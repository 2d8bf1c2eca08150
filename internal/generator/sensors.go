package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
)

type sensorSpec struct {
	threshold float64
	unit      string
	reading   func(rng *rand.Rand) float64
}

var sensorTypes = []models.SensorType{
	models.SensorTypeVibration,
	models.SensorTypeTemperature,
	models.SensorTypeTrafficCount,
	models.SensorTypeCrackDetection,
	models.SensorTypeWaterLevel,
	models.SensorTypeAirQuality,
}

var sensorSpecs = map[models.SensorType]sensorSpec{
	models.SensorTypeVibration: {12.0, "mm/s", func(rng *rand.Rand) float64 {
		return round(uniform(rng, 0.5, 15.0), 4)
	}},
	models.SensorTypeTemperature: {50.0, "celsius", func(rng *rand.Rand) float64 {
		return round(uniform(rng, 28, 52), 2)
	}},
	models.SensorTypeTrafficCount: {6000, "vehicles/hour", func(rng *rand.Rand) float64 {
		return float64(intBetween(rng, 50, 8000))
	}},
	models.SensorTypeCrackDetection: {35.0, "percentage", func(rng *rand.Rand) float64 {
		return round(uniform(rng, 0, 45), 2)
	}},
	models.SensorTypeWaterLevel: {20.0, "cm", func(rng *rand.Rand) float64 {
		return round(uniform(rng, 0, 25), 2)
	}},
	models.SensorTypeAirQuality: {100, "aqi", func(rng *rand.Rand) float64 {
		return float64(intBetween(rng, 15, 150))
	}},
}

var sensorStatuses = []weighted[models.SensorStatus]{
	{models.SensorStatusOnline, 0.85},
	{models.SensorStatusOffline, 0.10},
	{models.SensorStatusMaintenance, 0.05},
}

// Sensors attaches IoT sensors to every asset, in asset order.
func (g *Generator) Sensors(assets []models.Asset) []models.Sensor {
	var sensors []models.Sensor
	seq := 1

	for i := range assets {
		a := &assets[i]
		n := g.sensorCount(a)
		for range n {
			sensors = append(sensors, g.sensor(a, seq))
			seq++
		}
	}

	return sensors
}

func (g *Generator) sensorCount(a *models.Asset) int {
	switch {
	case a.Type == models.AssetTypeBridge:
		return intBetween(g.rng, 3, 5)
	case a.Criticality == models.CriticalityHigh || a.Criticality == models.CriticalityCritical:
		return intBetween(g.rng, 2, 4)
	default:
		return intBetween(g.rng, 1, 3)
	}
}

func (g *Generator) sensor(a *models.Asset, seq int) models.Sensor {
	sensorType := choose(g.rng, sensorTypes)
	spec := sensorSpecs[sensorType]

	reading := spec.reading(g.rng)
	timestamp := g.hoursAgo(uniform(g.rng, 0, 24))
	status := pick(g.rng, sensorStatuses)

	s := models.Sensor{
		ID:               fmt.Sprintf("SEN_%04d", seq),
		AssetID:          a.ID,
		Type:             sensorType,
		Latitude:         a.Latitude + uniform(g.rng, -0.001, 0.001),
		Longitude:        a.Longitude + uniform(g.rng, -0.001, 0.001),
		ReadingValue:     reading,
		ReadingTimestamp: timestamp,
		AlertThreshold:   spec.threshold,
		Unit:             spec.unit,
		Status:           status,
		InstallationDate: g.daysAgo(intBetween(g.rng, 30, 1095)),
	}

	if status == models.SensorStatusOnline {
		s.BatteryLevel = intBetween(g.rng, 15, 100)
	} else {
		s.BatteryLevel = intBetween(g.rng, 0, 30)
	}

	return s
}
