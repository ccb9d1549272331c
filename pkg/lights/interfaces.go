// Package lights implements the concrete core.Light collaborators:
// a delta point light and a spherical area light, covering both
// branches of the direct-lighting sample-count rule (one sample for
// delta lights, NsAreaLight for area lights).
package lights
