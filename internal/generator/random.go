package generator

import (
	"math"
	"math/rand/v2"
)

type weighted[T any] struct {
	value  T
	weight float64
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func normal(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + stddev*rng.NormFloat64()
}

func choose[T any](rng *rand.Rand, options []T) T {
	return options[rng.IntN(len(options))]
}

// pick draws one value with probability proportional to its weight.
func pick[T any](rng *rand.Rand, options []weighted[T]) T {
	var total float64
	for _, o := range options {
		total += o.weight
	}

	r := rng.Float64() * total
	for _, o := range options {
		if r < o.weight {
			return o.value
		}
		r -= o.weight
	}
	return options[len(options)-1].value
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
