// Package material implements the BSDF collaborators that core.Material
// and core.Emitter are built around: a diffuse (Lambertian) surface, a
// perfectly or imperfectly specular metal, a refractive dielectric, and
// an emissive surface used by area lights.
package material

import (
	"math"

	"github.com/wilhoit/rayforge/pkg/core"
)

// reflect computes the reflection of v off a surface with normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract computes the refraction of uv through a surface with normal
// n and relative index of refraction etaiOverEtat, via Snell's law.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance computes the Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
