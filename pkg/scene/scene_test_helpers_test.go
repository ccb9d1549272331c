package scene

import "github.com/wilhoit/rayforge/pkg/core"

// deterministicSampler always returns the midpoint of its domain, for
// tests that need a camera ray but don't care about jitter/lens noise.
type deterministicSampler struct{}

func (deterministicSampler) Get1D() float64   { return 0.5 }
func (deterministicSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (deterministicSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }
