// Package scene adapts glTF 2.0 documents to the binding pipeline's
// boundary contract. Loading reads the whole scene once into an immutable
// snapshot (volume geometry, skeleton joints, world-space skinned
// vertices, skin influences); writing attaches the computed weights as
// WEIGHTS_0/JOINTS_0 vertex attributes. Nothing in between touches the
// document.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"volumebind/internal/bind"
	"volumebind/internal/geom"
	"volumebind/internal/volume"
)

// Scene is one loaded glTF document plus everything the binding pipeline
// needs from it.
type Scene struct {
	Path string
	Doc  *gltf.Document

	// Volumes holds every node named as a binding volume, in world space.
	Volumes []volume.Mesh

	// Joints are the skin's joint node names; they double as the skeleton
	// and as the influence list, since a glTF skin's joints are exactly
	// the nodes that can influence its mesh.
	Joints []string

	// SkinnedNode is the index of the node carrying the skin.
	SkinnedNode uint32

	// Vertices are the skinned mesh's vertices in world space, with IDs
	// counting across primitives in order.
	Vertices []bind.Vertex
}

// ErrMultipleSkins mirrors the single-skin precondition: with several
// skins in a document the target of the weight write would be ambiguous.
var ErrMultipleSkins = &bind.SetupError{Reason: "more than one skin in scene; choose a scene with a single skinned mesh"}

// Load reads a glTF document from disk and extracts the binding snapshot.
func Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open scene %s", path)
	}
	s, err := FromDocument(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	s.Path = path
	return s, nil
}

// FromDocument extracts the binding snapshot from an in-memory document.
func FromDocument(doc *gltf.Document) (*Scene, error) {
	s := &Scene{Doc: doc}
	worlds := worldTransforms(doc)

	if len(doc.Skins) == 0 {
		return nil, &bind.SetupError{Reason: "no skin in scene; bind a mesh to joints before running"}
	}
	if len(doc.Skins) > 1 {
		return nil, ErrMultipleSkins
	}
	skin := doc.Skins[0]

	for _, jointNode := range skin.Joints {
		if int(jointNode) >= len(doc.Nodes) {
			return nil, fmt.Errorf("skin references node %d outside the document", jointNode)
		}
		name := doc.Nodes[jointNode].Name
		if name == "" {
			name = fmt.Sprintf("joint_%d", jointNode)
		}
		s.Joints = append(s.Joints, name)
	}

	skinnedNode := -1
	for i, n := range doc.Nodes {
		if n.Skin != nil && *n.Skin == 0 && n.Mesh != nil {
			skinnedNode = i
			break
		}
	}
	if skinnedNode < 0 {
		return nil, &bind.SetupError{Reason: "skin is not attached to any mesh node"}
	}
	s.SkinnedNode = uint32(skinnedNode)

	verts, err := readMeshPositions(doc, *doc.Nodes[skinnedNode].Mesh, worlds[skinnedNode])
	if err != nil {
		return nil, errors.Wrapf(err, "skinned mesh %q", doc.Nodes[skinnedNode].Name)
	}
	for i, p := range verts {
		s.Vertices = append(s.Vertices, bind.Vertex{ID: i, Pos: p})
	}

	for i, n := range doc.Nodes {
		if n.Mesh == nil || i == skinnedNode || !volume.IsVolumeName(n.Name) {
			continue
		}
		m, err := readVolumeMesh(doc, n.Name, *n.Mesh, worlds[i])
		if err != nil {
			return nil, errors.Wrapf(err, "volume %q", n.Name)
		}
		s.Volumes = append(s.Volumes, m)
	}

	return s, nil
}

// readMeshPositions reads every primitive's POSITION attribute of one mesh
// and returns the world-space points, concatenated in primitive order.
func readMeshPositions(doc *gltf.Document, meshIndex uint32, world mgl64.Mat4) ([]mgl64.Vec3, error) {
	if int(meshIndex) >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d outside the document", meshIndex)
	}
	var out []mgl64.Vec3
	for pi, prim := range doc.Meshes[meshIndex].Primitives {
		posAccessor, ok := prim.Attributes["POSITION"]
		if !ok {
			return nil, fmt.Errorf("primitive %d has no POSITION attribute", pi)
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read positions of primitive %d", pi)
		}
		for _, p := range positions {
			out = append(out, transformPoint(world, p))
		}
	}
	return out, nil
}

// readVolumeMesh reads one volume node's geometry as world-space triangles.
// glTF primitives are already triangulated; non-triangle primitive modes
// are rejected rather than guessed at.
func readVolumeMesh(doc *gltf.Document, name string, meshIndex uint32, world mgl64.Mat4) (volume.Mesh, error) {
	m := volume.Mesh{Name: name}
	if int(meshIndex) >= len(doc.Meshes) {
		return m, fmt.Errorf("mesh index %d outside the document", meshIndex)
	}

	for pi, prim := range doc.Meshes[meshIndex].Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			return m, fmt.Errorf("primitive %d is not a triangle list", pi)
		}
		posAccessor, ok := prim.Attributes["POSITION"]
		if !ok {
			return m, fmt.Errorf("primitive %d has no POSITION attribute", pi)
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
		if err != nil {
			return m, errors.Wrapf(err, "failed to read positions of primitive %d", pi)
		}

		points := make([]mgl64.Vec3, len(positions))
		for i, p := range positions {
			points[i] = transformPoint(world, p)
		}
		m.Vertices = append(m.Vertices, points...)

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return m, errors.Wrapf(err, "failed to read indices of primitive %d", pi)
			}
		} else {
			indices = make([]uint32, len(points))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if int(a) >= len(points) || int(b) >= len(points) || int(c) >= len(points) {
				return m, fmt.Errorf("primitive %d index out of range", pi)
			}
			m.Triangles = append(m.Triangles, geom.Triangle{
				A: points[a], B: points[b], C: points[c],
			})
		}
	}
	return m, nil
}

// Bounds returns the union bounding box of the scene's volumes and
// skinned vertices, for preview framing.
func (s *Scene) Bounds() geom.AABB {
	box := geom.EmptyAABB()
	for _, v := range s.Vertices {
		box.Extend(v.Pos)
	}
	for vi := range s.Volumes {
		for _, p := range s.Volumes[vi].Vertices {
			box.Extend(p)
		}
	}
	return box
}
