package dataset

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Generator produces a synthetic series of n points.
type Generator func(n int, seed int64) *Series

var generators = map[string]Generator{
	"sine": sine,
	"walk": walk,
}

// Generators returns the names of the built-in generators.
func Generators() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate runs the named built-in generator.
func Generate(name string, n int, seed int64) (*Series, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGenerator, "%q", name)
	}
	if n <= 0 {
		return nil, ErrEmptySeries
	}
	return gen(n, seed), nil
}

func sine(n int, _ int64) *Series {
	s := &Series{Name: "sine", X: make([]float64, 0, n), Y: make([]float64, 0, n)}
	for i := 0; i < n; i++ {
		x := float64(i) / 10
		s.Append(x, math.Sin(x)+0.3*math.Sin(3.1*x))
	}
	return s
}

func walk(n int, seed int64) *Series {
	rng := rand.New(rand.NewSource(seed))
	s := &Series{Name: "walk", X: make([]float64, 0, n), Y: make([]float64, 0, n)}
	y := 100.0
	for i := 0; i < n; i++ {
		y += rng.NormFloat64()
		s.Append(float64(i), y)
	}
	return s
}
