package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
)

var identityMatrix = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// localMatrix builds a node's local transform. A populated matrix wins;
// otherwise translation/rotation/scale compose in glTF order (T·R·S).
// Zero-valued rotation and scale read as identity, so nodes decoded
// without those properties behave correctly.
func localMatrix(n *gltf.Node) mgl64.Mat4 {
	if n.Matrix != [16]float32{} && n.Matrix != identityMatrix {
		var m mgl64.Mat4
		// Both glTF and mgl64 store matrices column-major.
		for i := 0; i < 16; i++ {
			m[i] = float64(n.Matrix[i])
		}
		return m
	}

	t := mgl64.Translate3D(float64(n.Translation[0]), float64(n.Translation[1]), float64(n.Translation[2]))

	r := mgl64.Ident4()
	if n.Rotation != [4]float32{} {
		q := mgl64.Quat{
			W: float64(n.Rotation[3]),
			V: mgl64.Vec3{float64(n.Rotation[0]), float64(n.Rotation[1]), float64(n.Rotation[2])},
		}
		r = q.Normalize().Mat4()
	}

	s := mgl64.Ident4()
	if n.Scale != [3]float32{} {
		s = mgl64.Scale3D(float64(n.Scale[0]), float64(n.Scale[1]), float64(n.Scale[2]))
	}

	return t.Mul4(r).Mul4(s)
}

// worldTransforms computes the world transform of every node by chaining
// local matrices root-down through the document's scene graphs. Nodes not
// reachable from any scene keep their local transform.
func worldTransforms(doc *gltf.Document) []mgl64.Mat4 {
	worlds := make([]mgl64.Mat4, len(doc.Nodes))
	visited := make([]bool, len(doc.Nodes))

	var walk func(idx uint32, parent mgl64.Mat4)
	walk = func(idx uint32, parent mgl64.Mat4) {
		if int(idx) >= len(doc.Nodes) || visited[idx] {
			return
		}
		visited[idx] = true
		worlds[idx] = parent.Mul4(localMatrix(doc.Nodes[idx]))
		for _, child := range doc.Nodes[idx].Children {
			walk(child, worlds[idx])
		}
	}

	for _, s := range doc.Scenes {
		for _, root := range s.Nodes {
			walk(root, mgl64.Ident4())
		}
	}
	for i := range doc.Nodes {
		if !visited[i] {
			worlds[i] = localMatrix(doc.Nodes[i])
		}
	}
	return worlds
}

// transformPoint applies a world matrix to a position.
func transformPoint(m mgl64.Mat4, p [3]float32) mgl64.Vec3 {
	v := m.Mul4x1(mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1})
	return v.Vec3()
}
