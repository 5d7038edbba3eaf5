package bind

import (
	"volumebind/internal/volume"
)

// BuildCatalog matches raw volume meshes against the skeleton and returns
// the volumes that name an existing joint, with bounds and centroids
// derived. Volumes whose parsed joint has no match are returned in skipped
// so the caller can report them; they take no further part in binding.
//
// Degenerate meshes (no vertices, no triangles) are retained when their
// joint matches: downstream phases treat them as containing nothing.
func BuildCatalog(meshes []volume.Mesh, joints []string) (vols []volume.Volume, skipped []string, err error) {
	if len(joints) == 0 {
		return nil, nil, ErrNoJoints
	}
	if len(meshes) == 0 {
		return nil, nil, ErrNoVolumes
	}

	jointSet := make(map[string]bool, len(joints))
	for _, j := range joints {
		jointSet[j] = true
	}

	for _, m := range meshes {
		joint, ok := volume.ParseJointName(m.Name)
		if !ok || !jointSet[joint] {
			skipped = append(skipped, m.Name)
			continue
		}
		vols = append(vols, volume.New(m, joint))
	}

	if len(vols) == 0 {
		return nil, skipped, ErrNoMatchingVolumes
	}
	return vols, skipped, nil
}
