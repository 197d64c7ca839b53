package camera

import "github.com/achilleasa/octocam/types"

// ViewSource is implemented by anything that looks at the scene through a
// perspective frustum: the player camera, shadow casting lights and so on.
type ViewSource interface {
	Position() types.Vec3
	Front() types.Vec3

	View() types.Mat4
	Proj() types.Mat4
	ViewProj() types.Mat4

	Frustum() Frustum
	IsPointInsideFrustum(p types.Vec3) bool
}

var (
	_ ViewSource = (*FreeCamera)(nil)
	_ ViewSource = (*SpotLight)(nil)
)

// ProjectToScreen maps a world-space point to pixel coordinates of a
// width x height viewport whose origin is the top-left corner. Points outside
// the view frustum are not projected and ok is false.
func ProjectToScreen(view ViewSource, p types.Vec3, width, height int) (x, y float32, ok bool) {
	if !view.IsPointInsideFrustum(p) {
		return 0, 0, false
	}

	ndc := view.ViewProj().TransformPoint(p)
	x = (ndc[0]*0.5 + 0.5) * float32(width)
	y = (0.5 - ndc[1]*0.5) * float32(height)
	return x, y, true
}
