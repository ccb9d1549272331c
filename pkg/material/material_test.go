package material

import (
	"math/rand"

	"github.com/wilhoit/rayforge/pkg/core"
)

// rngSampler adapts math/rand to core.Sampler for deterministic tests.
type rngSampler struct {
	rng *rand.Rand
}

func newRNGSampler(seed int64) *rngSampler {
	return &rngSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *rngSampler) Get1D() float64 { return s.rng.Float64() }
func (s *rngSampler) Get2D() core.Vec2 {
	return core.Vec2{X: s.rng.Float64(), Y: s.rng.Float64()}
}
func (s *rngSampler) Get3D() core.Vec3 {
	return core.Vec3{X: s.rng.Float64(), Y: s.rng.Float64(), Z: s.rng.Float64()}
}
