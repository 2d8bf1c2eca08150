// Package generator produces the synthetic Dubai infrastructure dataset.
//
// All randomness flows through the *rand.Rand owned by a Generator, and all
// dates are relative to its reference time, so a seed and a reference time
// fully determine the output.
package generator

import (
	"math/rand/v2"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mr1hm/dubai-infra-gen/internal/models"
	"github.com/mr1hm/dubai-infra-gen/internal/zones"
)

// pcgStream is the fixed second PCG word; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

type Generator struct {
	rng   *rand.Rand
	now   time.Time
	today time.Time
	title cases.Caser
}

// New returns a Generator seeded with seed whose dates are relative to now.
func New(seed int64, now time.Time) *Generator {
	return NewWithRand(rand.New(rand.NewPCG(uint64(seed), pcgStream)), now)
}

// NewWithRand returns a Generator drawing from rng. The Generator takes
// ownership of rng; sharing it with other code breaks reproducibility.
func NewWithRand(rng *rand.Rand, now time.Time) *Generator {
	now = now.UTC().Truncate(time.Second)
	return &Generator{
		rng:   rng,
		now:   now,
		today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		title: cases.Title(language.English),
	}
}

// Dataset generates zones, assets, sensors and alerts in that order. The
// Run field is left for the caller to fill.
func (g *Generator) Dataset(assetCount, alertCount int) models.Dataset {
	assets := g.Assets(assetCount)
	sensors := g.Sensors(assets)
	alerts := g.Alerts(assets, alertCount)

	return models.Dataset{
		Zones:   zones.All(),
		Assets:  assets,
		Sensors: sensors,
		Alerts:  alerts,
	}
}

func (g *Generator) daysAgo(days int) time.Time {
	return g.today.AddDate(0, 0, -days)
}

func (g *Generator) hoursAgo(hours float64) time.Time {
	return g.now.Add(-time.Duration(hours * float64(time.Hour))).Truncate(time.Second)
}
