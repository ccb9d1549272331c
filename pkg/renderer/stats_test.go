package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilhoit/rayforge/pkg/core"
)

func testConfig() core.SamplingConfig {
	return core.SamplingConfig{
		NsAA:         16,
		MaxTolerance: 0.05,
		Confidence:   1.96,
	}
}

func TestPixelStatsAddSampleTracksRunningMean(t *testing.T) {
	var ps PixelStats
	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))

	mean := ps.GetColor()
	assert.InDelta(t, 0.5, mean.X, 1e-9)
	assert.InDelta(t, 0.5, mean.Y, 1e-9)
	assert.Equal(t, 2, ps.SampleCount)
}

func TestPixelStatsShouldStopNeverBeforeHalfNsAA(t *testing.T) {
	var ps PixelStats
	config := testConfig()
	for i := 0; i < config.NsAA/2; i++ {
		ps.AddSample(core.NewVec3(1, 1, 1))
		assert.False(t, ps.ShouldStop(config))
	}
}

func TestPixelStatsShouldStopConvergesOnConstantSignal(t *testing.T) {
	var ps PixelStats
	config := testConfig()
	stopped := false
	for i := 0; i < config.NsAA; i++ {
		ps.AddSample(core.NewVec3(1, 1, 1))
		if ps.ShouldStop(config) {
			stopped = true
			break
		}
	}
	assert.True(t, stopped, "zero-variance samples should trigger the stopping rule well before NsAA")
}

func TestPixelStatsShouldStopDarkPixelUsesVarianceFloor(t *testing.T) {
	var ps PixelStats
	config := testConfig()
	for i := 0; i < config.NsAA/2+2; i++ {
		ps.AddSample(core.Vec3{})
	}
	assert.True(t, ps.ShouldStop(config), "an all-black pixel has zero variance and should converge")
}

func TestPixelStatsShouldStopNoisySignalRunsLonger(t *testing.T) {
	var ps PixelStats
	config := testConfig()
	noisy := []float64{0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2}
	stoppedEarly := false
	for i, v := range noisy {
		ps.AddSample(core.NewVec3(v, v, v))
		if i+1 > config.NsAA/2 && ps.ShouldStop(config) {
			stoppedEarly = true
		}
	}
	assert.False(t, stoppedEarly, "high-variance alternating samples shouldn't satisfy the tolerance test this quickly")
}
