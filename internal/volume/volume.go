// Package volume models binding volumes: closed triangulated meshes whose
// names tie them to a skeleton joint. A volume is never rendered; it is a
// purely geometric region used to decide which skinned vertices a joint
// should influence.
package volume

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"volumebind/internal/geom"
)

// NamePrefix starts every binding volume node name. The full convention is
// BindVolume_For_Joint_<jointName>_<index>; jointName itself may contain
// underscores.
const NamePrefix = "BindVolume"

// Mesh is the raw world-space geometry of one named volume node, as read
// from the host scene.
type Mesh struct {
	Name      string
	Vertices  []mgl64.Vec3
	Triangles []geom.Triangle
}

// Volume is a catalogued binding region: a volume mesh whose parsed joint
// name matched the skeleton. Bounds and Centroid are derived once here and
// read-only afterwards.
type Volume struct {
	Name        string
	Joint       string
	Triangles   []geom.Triangle
	Bounds      geom.AABB
	Centroid    mgl64.Vec3
	VertexCount int
}

// ParseJointName extracts the joint name from a volume node name. The name
// splits on underscores into BindVolume, For, Joint, one or more joint
// tokens, and a trailing index token; the joint name is the underscore-join
// of everything between the third token and the last.
func ParseJointName(name string) (string, bool) {
	parts := strings.Split(name, "_")
	if len(parts) < 5 {
		return "", false
	}
	if parts[0] != NamePrefix || parts[1] != "For" || parts[2] != "Joint" {
		return "", false
	}
	joint := strings.Join(parts[3:len(parts)-1], "_")
	if joint == "" {
		return "", false
	}
	return joint, true
}

// IsVolumeName reports whether a node name claims to be a binding volume,
// whether or not its joint part parses.
func IsVolumeName(name string) bool {
	return strings.HasPrefix(name, NamePrefix+"_")
}

// New derives a Volume from a raw mesh and its matched joint. The centroid
// is the mean of all vertex positions; it is the interior reference point
// the containment ray aims at. A mesh with no vertices yields a volume
// that contains nothing (VertexCount 0).
func New(m Mesh, joint string) Volume {
	v := Volume{
		Name:        m.Name,
		Joint:       joint,
		Triangles:   m.Triangles,
		Bounds:      geom.EmptyAABB(),
		VertexCount: len(m.Vertices),
	}
	if len(m.Vertices) == 0 {
		return v
	}

	sum := mgl64.Vec3{}
	for _, p := range m.Vertices {
		sum = sum.Add(p)
		v.Bounds.Extend(p)
	}
	v.Centroid = sum.Mul(1 / float64(len(m.Vertices)))
	return v
}
