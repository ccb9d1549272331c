// Package integrator implements the recursive Monte Carlo light
// transport estimator: zero-bounce emission plus Russian-roulette-gated
// indirect illumination, with direct lighting computed either by
// hemisphere sampling along BSDF-sampled directions (cosine-weighted
// for Lambertian, not uniform) or by light importance sampling (with
// multiple importance sampling against the BSDF-sampling strategy).
package integrator

import "github.com/wilhoit/rayforge/pkg/core"

// NewIntegrator constructs the module's core.Integrator implementation.
// Declared here so the root main package composes against this package without
// reaching into path_tracing.go internals.
func NewIntegrator(config core.SamplingConfig, logger core.Logger) core.Integrator {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &PathTracingIntegrator{config: config, logger: logger}
}
