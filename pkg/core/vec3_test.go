package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)

	assert.Equal(t, NewVec3(5, 1, 5), a.Add(b))
	assert.Equal(t, NewVec3(-3, 3, 1), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, -2, 6), a.MultiplyVec(b))
	assert.InDelta(t, 1*4+2*-1+3*2, a.Dot(b), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	require.True(t, x.Cross(y).Equals(NewVec3(0, 0, 1)))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.True(t, Vec3{}.Normalize().IsZero())
}

func TestVec3Luminance(t *testing.T) {
	white := NewVec3(1, 1, 1)
	assert.InDelta(t, 1.0, white.Luminance(), 1e-9)

	red := NewVec3(1, 0, 0)
	assert.InDelta(t, 0.2126, red.Luminance(), 1e-9)
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	clamped := v.Clamp(0, 1)
	assert.Equal(t, NewVec3(0, 0.5, 1), clamped)
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	assert.Equal(t, NewVec3(2, 0, 0), r.At(2))
}

func TestRayWithTMax(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, -1))
	narrowed := r.WithTMax(5)
	assert.Equal(t, math.Inf(1), r.TMax, "WithTMax must not mutate the receiver")
	assert.Equal(t, 5.0, narrowed.TMax)
}
