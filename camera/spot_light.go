package camera

import "github.com/achilleasa/octocam/types"

var (
	forward = types.Vec3{0, 0, -1}
	upAxis  = types.Vec3{0, 1, 0}
)

// SpotLight is a cone light that can render the scene from its own point of
// view (e.g. for shadow maps). Unlike the FreeCamera it has no euler angle
// state; its orientation is a quaternion and its projection is always square.
type SpotLight struct {
	position    types.Vec3
	orientation types.Quat

	// The full cone angle in degrees and the light range.
	coneAngle float32
	clip      ClipRange

	front types.Vec3
	up    types.Vec3

	view     types.Mat4
	proj     types.Mat4
	viewProj types.Mat4
	frustum  Frustum
}

// Create a spot light at pos. With an identity orientation the light points
// down the -Z axis.
func NewSpotLight(pos types.Vec3, orientation types.Quat, coneAngle float32, clip ClipRange) (*SpotLight, error) {
	if !(coneAngle > 0 && coneAngle < 180) {
		return nil, ErrInvalidFOV
	}
	if !(clip.Near > 0 && clip.Far > clip.Near) {
		return nil, ErrInvalidClipRange
	}

	l := &SpotLight{
		position:    pos,
		orientation: orientation.Normalize(),
		coneAngle:   coneAngle,
		clip:        clip,
	}
	l.proj = types.Perspective4(types.Radians(coneAngle), 1.0, clip.Near, clip.Far)
	l.update()
	return l, nil
}

// Build the orientation for a light with the given yaw and pitch in degrees.
// A zero yaw and pitch points down the -Z axis; positive yaw turns towards
// -X and positive pitch tilts upwards.
func OrientationFromAngles(yaw, pitch float32) types.Quat {
	qYaw := types.QuatFromAxisAngle(upAxis, types.Radians(yaw))
	qPitch := types.QuatFromAxisAngle(types.Vec3{1, 0, 0}, types.Radians(pitch))
	return qYaw.Mul(qPitch)
}

// Move the light.
func (l *SpotLight) SetPosition(pos types.Vec3) {
	l.position = pos
	l.update()
}

// Apply an additional rotation on top of the current orientation.
func (l *SpotLight) Rotate(q types.Quat) {
	l.orientation = q.Mul(l.orientation).Normalize()
	l.update()
}

func (l *SpotLight) Position() types.Vec3    { return l.position }
func (l *SpotLight) Orientation() types.Quat { return l.orientation }
func (l *SpotLight) Front() types.Vec3       { return l.front }
func (l *SpotLight) Up() types.Vec3          { return l.up }
func (l *SpotLight) ConeAngle() float32      { return l.coneAngle }
func (l *SpotLight) Range() float32          { return l.clip.Far }
func (l *SpotLight) View() types.Mat4        { return l.view }
func (l *SpotLight) Proj() types.Mat4        { return l.proj }
func (l *SpotLight) ViewProj() types.Mat4    { return l.viewProj }
func (l *SpotLight) Frustum() Frustum        { return l.frustum }

// Check whether p lies strictly inside the light frustum.
func (l *SpotLight) IsPointInsideFrustum(p types.Vec3) bool {
	return l.frustum.ContainsPoint(p)
}

func (l *SpotLight) update() {
	l.front = l.orientation.Rotate(forward).Normalize()
	l.up = l.orientation.Rotate(upAxis).Normalize()

	l.view = types.LookAtV(l.position, l.position.Add(l.front), l.up)
	l.viewProj = l.proj.Mul4(l.view)
	l.frustum = FrustumFromMatrix(l.viewProj)
}
