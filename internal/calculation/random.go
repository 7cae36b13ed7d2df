package calculation

import (
	"math"
	"math/rand/v2"

	"github.com/rpgo/fi-projector/internal/domain"
)

// UniformSource supplies uniform draws in the open interval (0,1).
type UniformSource interface {
	Float64() float64
}

// SeededSource is a reproducible UniformSource backed by a PCG generator.
// It never returns 0, which the Box-Muller transform cannot take.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a source whose sequence depends only on seed
func NewSeededSource(seed int64) *SeededSource {
	s := uint64(seed)
	return &SeededSource{rng: rand.New(rand.NewPCG(s, s^0x9E3779B97F4A7C15))}
}

// Float64 returns a draw in (0,1)
func (s *SeededSource) Float64() float64 {
	for {
		if u := s.rng.Float64(); u > 0 {
			return u
		}
	}
}

// FixedSource replays a fixed sequence of draws, cycling when exhausted
type FixedSource struct {
	Draws []float64
	next  int
}

// Float64 returns the next draw of the sequence
func (f *FixedSource) Float64() float64 {
	if len(f.Draws) == 0 {
		return 0
	}
	u := f.Draws[f.next%len(f.Draws)]
	f.next++
	return u
}

// standardNormal consumes exactly two uniforms and maps them to a standard
// normal variate with the Box-Muller transform.
func standardNormal(src UniformSource) (float64, error) {
	u1 := src.Float64()
	u2 := src.Float64()
	if !inOpenUnit(u1) {
		return 0, &domain.InvalidDrawError{Draw: u1}
	}
	if !inOpenUnit(u2) {
		return 0, &domain.InvalidDrawError{Draw: u2}
	}
	return boxMullerTransform(u1, u2), nil
}

// boxMullerTransform implements Box-Muller transform for normal distribution
func boxMullerTransform(u1, u2 float64) float64 {
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func inOpenUnit(u float64) bool {
	return u > 0 && u < 1
}
