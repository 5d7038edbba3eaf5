package bind

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSmoothing is the Gaussian falloff constant k used when blending
// overlapping volumes.
const DefaultSmoothing = 0.1

// falloff maps a vertex-to-centroid distance to an unnormalized blend
// weight, exp(-(d/2)·k²). A vertex exactly at a centroid gets full weight
// rather than entering the exponential, so the per-vertex total is always
// positive and normalization cannot divide by zero.
func falloff(dist, k float64) float64 {
	if dist == 0 {
		return 1
	}
	return math.Exp(-(dist / 2) * k * k)
}

// resolveWeights reduces one vertex's containment hits to a joint→weight
// map summing to 1.
//
// A single hit needs no blending: that joint gets exactly 1.0. With
// multiple hits each volume contributes a Gaussian falloff weight by its
// centroid distance; a joint reached through several volumes accumulates
// their contributions, and the per-joint sums are normalized across the
// vertex.
func resolveWeights(pos mgl64.Vec3, hits []Hit, k float64) map[string]float64 {
	if len(hits) == 1 {
		return map[string]float64{hits[0].Joint: 1.0}
	}

	weights := make(map[string]float64, len(hits))
	total := 0.0
	for _, h := range hits {
		w := falloff(pos.Sub(h.Centroid).Len(), k)
		weights[h.Joint] += w
		total += w
	}
	for j := range weights {
		weights[j] /= total
	}
	return weights
}
