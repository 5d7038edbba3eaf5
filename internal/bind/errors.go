package bind

import "fmt"

// SetupError reports a scene precondition that makes binding impossible.
// Setup errors are fatal: they are surfaced once and the pipeline does not
// proceed, leaving the host scene untouched.
type SetupError struct {
	Reason string
}

func (e *SetupError) Error() string {
	return "setup: " + e.Reason
}

var (
	// ErrNoJoints: the scene's skeleton is empty.
	ErrNoJoints = &SetupError{Reason: "no joints in scene; bind a mesh to joints before running"}

	// ErrNoVolumes: nothing in the scene is named as a binding volume.
	ErrNoVolumes = &SetupError{Reason: "no binding volumes in scene; create meshes named BindVolume_For_Joint_<joint>_<n>"}

	// ErrNoMatchingVolumes: volumes exist but none names an existing joint.
	ErrNoMatchingVolumes = &SetupError{Reason: "no volume name matches a joint; check volume and joint naming"}

	// ErrNoMesh: there are no skinned vertices to weight.
	ErrNoMesh = &SetupError{Reason: "no skinned mesh bound to an affected joint"}
)

// UninfluencedJointError reports a volume-matched joint that is not part of
// the skin's influence list. Weighting such a joint would silently do
// nothing in the host, so it is rejected up front.
func UninfluencedJointError(joint string) *SetupError {
	return &SetupError{Reason: fmt.Sprintf("joint %q has a binding volume but does not influence the skinned mesh", joint)}
}
