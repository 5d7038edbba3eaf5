// Package bind implements volume-based skin binding: deciding which
// skinned vertices lie inside which binding volumes, and turning overlaps
// into smooth per-joint blend weights.
//
// The pipeline runs in fixed phases over one immutable Snapshot: catalog
// (BuildCatalog), bounding-box prefilter, exact parity containment,
// overlap resolution, emission. It is synchronous and touches no host
// state; the caller hands the Result back to the host in one write.
package bind

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"volumebind/internal/volume"
)

// Vertex is one skinned-mesh vertex: a host-side identifier plus its
// world-space position.
type Vertex struct {
	ID  int
	Pos mgl64.Vec3
}

// Hit records that a vertex was found inside one volume. The volume's
// centroid rides along for the distance term of the overlap resolver.
type Hit struct {
	Joint    string
	Volume   string
	Centroid mgl64.Vec3
}

// Snapshot is the read-only input of one binding run: the catalogued
// volumes, the skeleton, the skinned vertices, and the joints currently
// influencing the skin.
type Snapshot struct {
	Volumes    []volume.Volume
	Joints     []string
	Vertices   []Vertex
	Influences []string
}

// Options tunes a binding run.
type Options struct {
	// Smoothing is the Gaussian falloff constant k; zero or negative
	// selects DefaultSmoothing.
	Smoothing float64
}

// Result is the outcome of one binding run. Weights maps vertex IDs to
// joint weights summing to 1.0; vertices inside no volume are absent.
// Blended lists, in ascending ID order, the vertices that sat inside more
// than one volume and therefore required blending; the host may want to
// highlight these.
type Result struct {
	Weights map[int]map[string]float64
	Blended []int
}

// Run executes the binding pipeline over one scene snapshot.
//
// All setup preconditions are validated before any geometry work: a run
// either fails with a *SetupError describing what is missing, or computes
// the complete weight map. There are no partial results.
func Run(snap Snapshot, opts Options) (Result, error) {
	k := opts.Smoothing
	if k <= 0 {
		k = DefaultSmoothing
	}

	if len(snap.Joints) == 0 {
		return Result{}, ErrNoJoints
	}
	if len(snap.Volumes) == 0 {
		return Result{}, ErrNoMatchingVolumes
	}
	if len(snap.Vertices) == 0 {
		return Result{}, ErrNoMesh
	}
	influenced := make(map[string]bool, len(snap.Influences))
	for _, j := range snap.Influences {
		influenced[j] = true
	}
	for i := range snap.Volumes {
		if !influenced[snap.Volumes[i].Joint] {
			return Result{}, UninfluencedJointError(snap.Volumes[i].Joint)
		}
	}

	// Phase 2+3: per volume, prefilter then exact containment.
	hits := make(map[int][]Hit)
	for i := range snap.Volumes {
		vol := &snap.Volumes[i]

		cands := candidates(vol, snap.Vertices)
		if len(cands) == 0 {
			continue
		}

		for _, v := range containmentPass(vol, cands) {
			hits[v.ID] = append(hits[v.ID], Hit{
				Joint:    vol.Joint,
				Volume:   vol.Name,
				Centroid: vol.Centroid,
			})
		}
	}

	// Phase 4: overlap resolution.
	res := Result{Weights: make(map[int]map[string]float64, len(hits))}
	for _, v := range snap.Vertices {
		vertexHits := hits[v.ID]
		if len(vertexHits) == 0 {
			continue
		}
		res.Weights[v.ID] = resolveWeights(v.Pos, vertexHits, k)
		if len(vertexHits) > 1 {
			res.Blended = append(res.Blended, v.ID)
		}
	}
	sort.Ints(res.Blended)

	return res, nil
}
