package integrator

import (
	"github.com/wilhoit/rayforge/pkg/core"
)

// PathTracingIntegrator implements core.Integrator via unidirectional
// recursive path tracing: EstimateRadiance is the zero-bounce emission
// at the primary hit plus atLeastOneBounce's direct + indirect terms.
type PathTracingIntegrator struct {
	config core.SamplingConfig
	logger core.Logger
}

// EstimateRadiance computes the radiance along ray, per spec §4.7.
func (pt *PathTracingIntegrator) EstimateRadiance(ray core.Ray, scene core.Scene, sampler core.Sampler) core.Vec3 {
	hit, isHit := scene.BVH().Intersect(ray)
	if !isHit {
		return pt.backgroundGradient(ray, scene)
	}

	emitted := pt.emittedLight(ray, hit)
	bounce := pt.atLeastOneBounce(ray, hit, scene, sampler, pt.config.MaxRayDepth)
	return emitted.Add(bounce)
}

// atLeastOneBounce computes direct lighting at hit plus, subject to
// Russian roulette and the hard depth backstop, the recursive
// indirect term. Emission is deliberately NOT added here: it is
// either the caller's zero-bounce term, or it arrives at an upstream
// hit via light-importance sampling — adding it again here would
// double-count it (spec §4.7).
func (pt *PathTracingIntegrator) atLeastOneBounce(rayIn core.Ray, hit core.Intersection, scene core.Scene, sampler core.Sampler, depthRemaining int) core.Vec3 {
	direct := pt.directLighting(scene, rayIn, hit, sampler)

	if depthRemaining <= 0 {
		return direct
	}

	scatter, didScatter := hit.Material.Scatter(rayIn, hit, sampler)
	if !didScatter {
		return direct
	}

	terminate, compensation := pt.russianRoulette(sampler.Get1D())
	if terminate {
		pt.logger.Debugf("russian roulette terminated path at bounce %d", pt.config.MaxRayDepth-depthRemaining)
		return direct
	}

	var indirect core.Vec3
	if scatter.IsSpecular() {
		indirect = pt.specularIndirect(scatter, scene, sampler, depthRemaining-1)
	} else {
		indirect = pt.diffuseIndirect(scatter, hit, scene, sampler, depthRemaining-1)
	}

	return direct.Add(indirect.Multiply(compensation))
}

// specularIndirect recurses through a delta-BSDF bounce: the
// attenuation carries no probability-density normalization since the
// direction was chosen deterministically (up to fuzz) rather than
// importance-sampled.
func (pt *PathTracingIntegrator) specularIndirect(scatter core.ScatterResult, scene core.Scene, sampler core.Sampler, depthRemaining int) core.Vec3 {
	childHit, isHit := scene.BVH().Intersect(scatter.Scattered)
	if !isHit {
		bg := pt.backgroundGradient(scatter.Scattered, scene)
		return scatter.Attenuation.MultiplyVec(bg)
	}

	emitted := pt.emittedLight(scatter.Scattered, childHit)
	bounce := pt.atLeastOneBounce(scatter.Scattered, childHit, scene, sampler, depthRemaining)
	incoming := emitted.Add(bounce)

	return scatter.Attenuation.MultiplyVec(incoming)
}

// diffuseIndirect recurses through a continuous BSDF lobe, weighting
// the incoming radiance by the BSDF-sampling MIS strategy against the
// light-sampling strategy evaluated at the same outgoing direction.
func (pt *PathTracingIntegrator) diffuseIndirect(scatter core.ScatterResult, hit core.Intersection, scene core.Scene, sampler core.Sampler, depthRemaining int) core.Vec3 {
	scatterDir := scatter.Scattered.Direction.Normalize()
	cosine := scatterDir.Dot(hit.Normal)
	if cosine <= 0 || scatter.PDF <= 0 {
		return core.Vec3{}
	}

	childHit, isHit := scene.BVH().Intersect(scatter.Scattered)

	var incoming core.Vec3
	misWeight := 1.0
	if !isHit {
		incoming = pt.backgroundGradient(scatter.Scattered, scene)
	} else {
		lightPDF := core.CalculateLightPDF(scene.Lights(), hit.Point, scatterDir)
		misWeight = core.PowerHeuristic(1, scatter.PDF, 1, lightPDF)

		emitted := pt.emittedLight(scatter.Scattered, childHit)
		bounce := pt.atLeastOneBounce(scatter.Scattered, childHit, scene, sampler, depthRemaining)
		incoming = emitted.Add(bounce)
	}

	return scatter.Attenuation.Multiply(cosine * misWeight / scatter.PDF).MultiplyVec(incoming)
}

// emittedLight returns the hit material's emission, or zero if it
// isn't an emitter.
func (pt *PathTracingIntegrator) emittedLight(ray core.Ray, hit core.Intersection) core.Vec3 {
	if emitter, ok := hit.Material.(core.Emitter); ok {
		return emitter.Emit(ray)
	}
	return core.Vec3{}
}

// directLighting dispatches to the configured direct-lighting estimator.
func (pt *PathTracingIntegrator) directLighting(scene core.Scene, rayIn core.Ray, hit core.Intersection, sampler core.Sampler) core.Vec3 {
	if pt.config.DirectHemisphereSample {
		return pt.directHemisphere(scene, rayIn, hit, sampler)
	}
	return pt.directLightSampling(scene, rayIn, hit, sampler)
}

// directHemisphere implements spec §4.5: BSDF-sampled hemisphere
// directions, each checked against the scene for a light hit.
func (pt *PathTracingIntegrator) directHemisphere(scene core.Scene, rayIn core.Ray, hit core.Intersection, sampler core.Sampler) core.Vec3 {
	n := len(scene.Lights()) * pt.config.NsAreaLight
	if n <= 0 {
		n = pt.config.NsAreaLight
	}
	if n <= 0 {
		return core.Vec3{}
	}

	sum := core.Vec3{}
	for i := 0; i < n; i++ {
		scatter, didScatter := hit.Material.Scatter(rayIn, hit, sampler)
		if !didScatter || scatter.PDF <= 0 {
			continue
		}

		cosine := scatter.Scattered.Direction.Normalize().Dot(hit.Normal)
		if cosine <= 0 {
			continue
		}

		childHit, isHit := scene.BVH().Intersect(scatter.Scattered)
		if !isHit {
			continue
		}
		emission := pt.emittedLight(scatter.Scattered, childHit)
		if emission.IsZero() {
			continue
		}

		sum = sum.Add(emission.MultiplyVec(scatter.Attenuation).Multiply(cosine / scatter.PDF))
	}
	return sum.Multiply(1.0 / float64(n))
}

// directLightSampling implements spec §4.6: loop every light, drawing
// one sample if it's a delta light else NsAreaLight samples, summing
// each light's mean contribution weighted by MIS against the BSDF
// strategy.
func (pt *PathTracingIntegrator) directLightSampling(scene core.Scene, rayIn core.Ray, hit core.Intersection, sampler core.Sampler) core.Vec3 {
	lights := scene.Lights()
	if len(lights) == 0 {
		return core.Vec3{}
	}

	total := core.Vec3{}
	for _, light := range lights {
		numSamples := pt.config.NsAreaLight
		if light.IsDeltaLight() {
			numSamples = 1
		}
		if numSamples <= 0 {
			continue
		}

		sum := core.Vec3{}
		for i := 0; i < numSamples; i++ {
			sample := light.Sample(hit.Point, sampler.Get2D())
			if sample.PDF <= 0 || sample.Emission.IsZero() {
				continue
			}

			cosine := sample.Direction.Dot(hit.Normal)
			if cosine <= 0 {
				continue
			}

			materialPDF, isDelta := hit.Material.PDF(rayIn.Direction, sample.Direction, hit.Normal)
			if isDelta {
				continue // delta BSDFs can't be directly lit via explicit sampling
			}

			if !pt.isVisible(scene, hit.Point, sample.Direction, sample.Distance) {
				continue
			}

			misWeight := 1.0
			if !light.IsDeltaLight() {
				misWeight = core.PowerHeuristic(1, sample.PDF, 1, materialPDF)
			}

			brdf := hit.Material.EvaluateBRDF(rayIn.Direction, sample.Direction, hit.Normal)
			sum = sum.Add(brdf.MultiplyVec(sample.Emission).Multiply(cosine * misWeight / sample.PDF))
		}
		total = total.Add(sum.Multiply(1.0 / float64(numSamples)))
	}
	return total
}

// isVisible casts a shadow ray toward a light sample at distance and
// reports whether the path to the light is unoccluded.
func (pt *PathTracingIntegrator) isVisible(scene core.Scene, point, direction core.Vec3, distance float64) bool {
	shadowRay := core.NewRay(point, direction).WithTMax(distance - 1e-4)
	return !scene.BVH().HasIntersection(shadowRay)
}

// russianRoulette flips a coin with fixed continuation probability
// p_rr at every bounce. Returns (terminate, compensation) where
// compensation rescales a surviving path by 1/p_rr to keep the
// estimator unbiased independent of p_rr's value.
func (pt *PathTracingIntegrator) russianRoulette(u float64) (bool, float64) {
	p := pt.config.RussianRouletteP
	if u > p {
		return true, 0.0
	}
	return false, 1.0 / p
}

// backgroundGradient returns the sky color for a ray that escapes the scene.
func (pt *PathTracingIntegrator) backgroundGradient(ray core.Ray, scene core.Scene) core.Vec3 {
	top, bottom := scene.BackgroundColors()
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
}
