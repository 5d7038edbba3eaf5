package bind

import (
	"volumebind/internal/volume"
)

// candidates returns the vertices whose positions fall inside the volume's
// bounding box. A vertex outside the box on any axis can never be inside
// the volume, so the O(candidates × triangles) exact test below never sees
// it. An empty result lets the caller skip the volume entirely.
func candidates(vol *volume.Volume, verts []Vertex) []Vertex {
	if vol.VertexCount == 0 {
		return nil
	}
	var out []Vertex
	for _, v := range verts {
		if vol.Bounds.Contains(v.Pos) {
			out = append(out, v)
		}
	}
	return out
}

// containmentPass runs the exact point-in-mesh test for every candidate
// against one volume and returns the vertices found inside.
//
// For each candidate, triangle crossings are counted along the segment
// from the vertex to the volume centroid, an interior point by
// construction. For a watertight boundary the parity of crossings equals
// inside(vertex) XOR inside(centroid), so with an interior endpoint an
// even count, zero included, means the vertex is inside. (The familiar
// odd-crossings rule applies to unbounded rays, not to a segment ending
// at an interior reference point.) Degenerate triangles contribute no
// crossings. The crossing counters live only for this pass.
func containmentPass(vol *volume.Volume, cands []Vertex) []Vertex {
	if len(vol.Triangles) == 0 {
		return nil
	}

	crossings := make([]int, len(cands))
	for _, tri := range vol.Triangles {
		normal, ok := tri.Normal()
		if !ok {
			continue
		}
		for i, v := range cands {
			if tri.SegmentCrosses(normal, v.Pos, vol.Centroid) {
				crossings[i]++
			}
		}
	}

	var inside []Vertex
	for i, n := range crossings {
		if n%2 == 0 {
			inside = append(inside, cands[i])
		}
	}
	return inside
}
