package renderer

import (
	"math/rand"

	"github.com/wilhoit/rayforge/pkg/core"
)

// RandomSampler adapts math/rand to core.Sampler. Each tile owns one,
// seeded deterministically from its tile ID so renders are
// reproducible across runs without sharing mutable PRNG state between
// worker goroutines (spec §5).
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler seeds a sampler from seed.
func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Get1D() float64 { return s.rng.Float64() }

func (s *RandomSampler) Get2D() core.Vec2 {
	return core.Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}

func (s *RandomSampler) Get3D() core.Vec3 {
	return core.Vec3{X: s.rng.Float64(), Y: s.rng.Float64(), Z: s.rng.Float64()}
}
