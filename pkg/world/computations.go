package world

import (
	"math"

	"github.com/whitted/raytracer/pkg/core"
	"github.com/whitted/raytracer/pkg/geometry"
)

// Computations is the per-hit state the shading pipeline needs, derived once
// from an intersection and reused by every shading term.
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple // Point nudged along the normal; shadow and reflection ray origin
	UnderPoint core.Tuple // Point nudged against the normal; refraction ray origin
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	N1, N2     float64 // Refractive indices either side of the surface
}

// PrepareComputations derives the shading state for a hit. The full sorted
// intersection list for the ray is needed to reconstruct the refractive
// indices on both sides of the hit surface; pass nil when only the hit
// exists.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs geometry.Intersections) Computations {
	if len(xs) == 0 {
		xs = geometry.Intersections{hit}
	}

	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = geometry.NormalAt(hit.Object, comps.Point, &hit)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	// The epsilon offsets keep secondary rays from immediately re-hitting
	// the surface they start on (shadow acne).
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)

	return comps
}

// refractiveIndices replays the sorted intersection list up to and including
// the hit, maintaining the stack of solids the ray is currently inside:
// entered on first crossing, left on the second. This handles overlapping
// transparent solids without any spatial data structure.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []geometry.Shape

	for _, x := range xs {
		atHit := x == hit

		if atHit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// Toggle membership: a second crossing of the same object means
		// the ray is leaving it.
		found := -1
		for i, container := range containers {
			if container == x.Object {
				found = i
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

// Schlick returns the Fresnel reflectance at the hit via Schlick's
// polynomial approximation, used to blend reflection against refraction.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0 // Total internal reflection
		}
		// Use the transmitted angle's cosine when leaving the denser medium
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
