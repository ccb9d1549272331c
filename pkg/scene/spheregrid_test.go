package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOklchToRGBStaysInUnitRange(t *testing.T) {
	for _, h := range []float64{0, 90, 180, 270, 359} {
		c := oklchToRGB(0.65, 0.2, h)
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.LessOrEqual(t, c.X, 1.0)
		assert.GreaterOrEqual(t, c.Y, 0.0)
		assert.LessOrEqual(t, c.Y, 1.0)
		assert.GreaterOrEqual(t, c.Z, 0.0)
		assert.LessOrEqual(t, c.Z, 1.0)
	}
}

func TestNewSphereGridSceneBuildsA400SphereGrid(t *testing.T) {
	s := NewSphereGridScene()
	require.NotNil(t, s.BVH())
	require.Len(t, s.Lights(), 1, "the sun-like sphere light is the grid's only light")
	assert.Equal(t, 20*20+2+1, s.BVH().PrimitiveCount(), "400 grid spheres plus two ground triangles and the light sphere")
}
