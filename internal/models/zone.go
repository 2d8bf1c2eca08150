package models

type Density string

const (
	DensityLow      Density = "low"
	DensityMedium   Density = "medium"
	DensityHigh     Density = "high"
	DensityVeryHigh Density = "very_high"
)

// Zone is a fixed geographic partition of Dubai used to group assets.
type Zone struct {
	ID         string
	Name       string
	CenterLat  float64
	CenterLng  float64
	AreaKm2    float64
	Population int
	Density    Density
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (z Zone) Center() Coordinates {
	return Coordinates{
		Latitude:  z.CenterLat,
		Longitude: z.CenterLng,
	}
}
