// Package geometry implements the concrete primitives of the scene:
// spheres and triangles, each exposing the core.Primitive contract
// (bounding box plus ray intersection) that the acceleration structure
// and integrator consume.
package geometry
