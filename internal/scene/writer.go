package scene

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"volumebind/internal/bind"
)

// maxInfluences is the number of joint slots a glTF vertex attribute set
// carries (JOINTS_0/WEIGHTS_0 are vec4s). Vertices blended across more
// joints keep the four strongest, renormalized.
const maxInfluences = 4

// WriteWeights attaches the binding result to the scene's skinned mesh as
// WEIGHTS_0 and JOINTS_0 attributes. It is the single write-back of a
// run: it must only be called with a complete Result, after the pipeline
// has finished.
//
// Unassigned vertices get all-zero weights, leaving them to whatever
// influence they had before; hosts treat zero-weight slots as absent.
func WriteWeights(s *Scene, res bind.Result) error {
	doc := s.Doc
	jointSlot := make(map[string]uint16, len(s.Joints))
	for i, name := range s.Joints {
		jointSlot[name] = uint16(i)
	}

	mesh := doc.Meshes[*doc.Nodes[s.SkinnedNode].Mesh]
	offset := 0
	for pi, prim := range mesh.Primitives {
		posAccessor, ok := prim.Attributes["POSITION"]
		if !ok {
			return fmt.Errorf("primitive %d has no POSITION attribute", pi)
		}
		count := int(doc.Accessors[posAccessor].Count)

		weights := make([][4]float32, count)
		joints := make([][4]uint16, count)
		for i := 0; i < count; i++ {
			fillVertexSlots(res.Weights[offset+i], jointSlot, &weights[i], &joints[i])
		}

		prim.Attributes["WEIGHTS_0"] = modeler.WriteWeights(doc, weights)
		prim.Attributes["JOINTS_0"] = modeler.WriteJoints(doc, joints)
		offset += count
	}
	return nil
}

// fillVertexSlots lays one vertex's joint weights into the 4-slot
// attribute arrays, strongest first. Ties break by joint name so output
// is deterministic.
func fillVertexSlots(byJoint map[string]float64, jointSlot map[string]uint16, w *[4]float32, j *[4]uint16) {
	if len(byJoint) == 0 {
		return
	}

	type jw struct {
		joint  string
		weight float64
	}
	ranked := make([]jw, 0, len(byJoint))
	for joint, weight := range byJoint {
		if _, ok := jointSlot[joint]; !ok {
			continue
		}
		ranked = append(ranked, jw{joint, weight})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].weight != ranked[b].weight {
			return ranked[a].weight > ranked[b].weight
		}
		return ranked[a].joint < ranked[b].joint
	})

	if len(ranked) > maxInfluences {
		ranked = ranked[:maxInfluences]
	}
	total := 0.0
	for _, r := range ranked {
		total += r.weight
	}
	if total == 0 {
		return
	}
	for i, r := range ranked {
		w[i] = float32(r.weight / total)
		j[i] = jointSlot[r.joint]
	}
}

// Save writes the document, with weights attached, to path.
func Save(s *Scene, path string) error {
	if err := gltf.Save(s.Doc, path); err != nil {
		return errors.Wrapf(err, "failed to save scene to %s", path)
	}
	return nil
}
