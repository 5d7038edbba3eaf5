package bind

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFalloff(t *testing.T) {
	assert.Equal(t, 1.0, falloff(0, DefaultSmoothing), "zero distance gets full weight")

	w1 := falloff(1, DefaultSmoothing)
	w2 := falloff(2, DefaultSmoothing)
	assert.Less(t, w1, 1.0)
	assert.Less(t, w2, w1, "falloff must decrease with distance")
	assert.Greater(t, w2, 0.0)

	// exp(-(d/2)·k²) at d=2, k=0.1.
	assert.InDelta(t, math.Exp(-0.01), falloff(2, 0.1), 1e-12)
}

func TestResolveWeightsSingleHit(t *testing.T) {
	hits := []Hit{{Joint: "Spine1", Volume: "v0", Centroid: mgl64.Vec3{3, 3, 3}}}
	w := resolveWeights(mgl64.Vec3{0, 0, 0}, hits, DefaultSmoothing)
	require.Len(t, w, 1)
	assert.Equal(t, 1.0, w["Spine1"])
}

func TestResolveWeightsEquidistant(t *testing.T) {
	hits := []Hit{
		{Joint: "Left", Volume: "v0", Centroid: mgl64.Vec3{-1, 0, 0}},
		{Joint: "Right", Volume: "v1", Centroid: mgl64.Vec3{1, 0, 0}},
	}
	w := resolveWeights(mgl64.Vec3{0, 0, 0}, hits, DefaultSmoothing)
	require.Len(t, w, 2)
	assert.InDelta(t, 0.5, w["Left"], 1e-9)
	assert.InDelta(t, 0.5, w["Right"], 1e-9)
}

func TestResolveWeightsCloserWinsMore(t *testing.T) {
	hits := []Hit{
		{Joint: "Near", Volume: "v0", Centroid: mgl64.Vec3{1, 0, 0}},
		{Joint: "Far", Volume: "v1", Centroid: mgl64.Vec3{40, 0, 0}},
	}
	w := resolveWeights(mgl64.Vec3{0, 0, 0}, hits, DefaultSmoothing)
	assert.Greater(t, w["Near"], w["Far"])
	assert.InDelta(t, 1.0, w["Near"]+w["Far"], 1e-9)
}

func TestResolveWeightsSumToOne(t *testing.T) {
	hits := []Hit{
		{Joint: "A", Volume: "v0", Centroid: mgl64.Vec3{1, 2, 3}},
		{Joint: "B", Volume: "v1", Centroid: mgl64.Vec3{-4, 0, 1}},
		{Joint: "C", Volume: "v2", Centroid: mgl64.Vec3{0, 7, -2}},
		{Joint: "D", Volume: "v3", Centroid: mgl64.Vec3{3, 3, 3}},
	}
	w := resolveWeights(mgl64.Vec3{0.5, 0.5, 0.5}, hits, DefaultSmoothing)
	require.Len(t, w, 4)

	sum := 0.0
	for _, x := range w {
		assert.Greater(t, x, 0.0)
		sum += x
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestResolveWeightsSameJointAccumulates(t *testing.T) {
	// Two volumes of the same joint: their contributions merge into one
	// entry, and with no other joint the vertex is fully owned.
	hits := []Hit{
		{Joint: "Spine1", Volume: "v0", Centroid: mgl64.Vec3{1, 0, 0}},
		{Joint: "Spine1", Volume: "v1", Centroid: mgl64.Vec3{0, 2, 0}},
	}
	w := resolveWeights(mgl64.Vec3{0, 0, 0}, hits, DefaultSmoothing)
	require.Len(t, w, 1)
	assert.InDelta(t, 1.0, w["Spine1"], 1e-9)
}

func TestResolveWeightsAtCentroid(t *testing.T) {
	// Vertex sitting exactly on one centroid: full falloff weight there,
	// but shared volumes still dilute it after normalization.
	hits := []Hit{
		{Joint: "A", Volume: "v0", Centroid: mgl64.Vec3{0, 0, 0}},
		{Joint: "B", Volume: "v1", Centroid: mgl64.Vec3{10, 0, 0}},
	}
	w := resolveWeights(mgl64.Vec3{0, 0, 0}, hits, DefaultSmoothing)
	assert.Greater(t, w["A"], w["B"])
	assert.InDelta(t, 1.0, w["A"]+w["B"], 1e-9)
}
