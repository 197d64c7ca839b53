package camera

import (
	"math"

	"github.com/achilleasa/octocam/types"
)

const (
	defaultYaw   float32 = -90.0
	defaultPitch float32 = 0.0

	// Pitch is kept away from +/-90 degrees; at the poles the front vector
	// becomes parallel to the world up axis and yaw is undefined.
	maxPitch float32 = 89.0
	minPitch float32 = -89.0
)

var worldUp = types.Vec3{0, 1, 0}

// The distances to the near and far clipping planes.
type ClipRange struct {
	Near float32
	Far  float32
}

// FreeCamera is a fly-through camera driven by yaw/pitch angles. Every
// mutation recomputes the basis vectors, the view/projection matrices with
// their inverses and the frustum planes, so readers always observe a
// consistent state.
//
// The camera is not safe for concurrent use.
type FreeCamera struct {
	position types.Vec3
	front    types.Vec3
	up       types.Vec3
	right    types.Vec3

	// Euler angles in degrees.
	yaw   float32
	pitch float32

	// Projection parameters.
	fov    float32
	width  int
	height int
	clip   ClipRange

	view        types.Mat4
	viewInv     types.Mat4
	proj        types.Mat4
	projInv     types.Mat4
	viewProj    types.Mat4
	viewProjInv types.Mat4

	frustum Frustum
}

// Create a camera at eye looking down the -Z axis. The fov argument is the
// vertical field of view in degrees.
func NewFreeCamera(eye types.Vec3, width, height int, fov float32, clip ClipRange) (*FreeCamera, error) {
	c := &FreeCamera{
		position: eye,
		front:    types.Vec3{0, 0, -1},
		up:       worldUp,
		yaw:      defaultYaw,
		pitch:    defaultPitch,
	}

	if err := c.SetProjection(fov, width, height, clip); err != nil {
		return nil, err
	}
	return c, nil
}

// Setup the perspective projection. The camera is left untouched if any of
// the arguments is invalid.
func (c *FreeCamera) SetProjection(fov float32, width, height int, clip ClipRange) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidViewport
	}
	if !(fov > 0 && fov < 180) {
		return ErrInvalidFOV
	}
	if !(clip.Near > 0 && clip.Far > clip.Near) {
		return ErrInvalidClipRange
	}

	c.fov, c.width, c.height, c.clip = fov, width, height, clip
	c.proj = types.Perspective4(types.Radians(fov), float32(width)/float32(height), clip.Near, clip.Far)
	c.projInv = c.proj.Inv()
	c.update()
	return nil
}

// Move the camera along its front axis.
func (c *FreeCamera) TranslateForward(delta float32) {
	c.position = c.position.Add(c.front.Mul(delta))
	c.update()
}

// Move the camera along its right axis.
func (c *FreeCamera) TranslateRight(delta float32) {
	c.position = c.position.Add(c.right.Mul(delta))
	c.update()
}

// Move the camera along its up axis.
func (c *FreeCamera) TranslateUp(delta float32) {
	c.position = c.position.Add(c.up.Mul(delta))
	c.update()
}

// Rotate the camera around its right axis. The accumulated pitch is clamped
// to [-89, 89] degrees.
func (c *FreeCamera) Pitch(deltaDegrees float32) {
	c.pitch = types.Clamp(c.pitch+deltaDegrees, minPitch, maxPitch)
	c.update()
}

// Rotate the camera around the world up axis.
func (c *FreeCamera) Yaw(deltaDegrees float32) {
	c.yaw += deltaDegrees
	c.update()
}

// Roll always fails; the camera has no roll degree of freedom.
func (c *FreeCamera) Roll(deltaDegrees float32) error {
	return ErrRollNotSupported
}

// Set absolute yaw and pitch angles in degrees. Pitch is clamped.
func (c *FreeCamera) SetOrientation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = types.Clamp(pitch, minPitch, maxPitch)
	c.update()
}

func (c *FreeCamera) Position() types.Vec3 { return c.position }
func (c *FreeCamera) Front() types.Vec3    { return c.front }
func (c *FreeCamera) Up() types.Vec3       { return c.up }
func (c *FreeCamera) Right() types.Vec3    { return c.right }

// Get the accumulated yaw angle in degrees.
func (c *FreeCamera) YawAngle() float32 { return c.yaw }

// Get the accumulated pitch angle in degrees.
func (c *FreeCamera) PitchAngle() float32 { return c.pitch }

func (c *FreeCamera) FOV() float32         { return c.fov }
func (c *FreeCamera) Viewport() (int, int) { return c.width, c.height }
func (c *FreeCamera) ClipRange() ClipRange { return c.clip }

func (c *FreeCamera) View() types.Mat4        { return c.view }
func (c *FreeCamera) ViewInv() types.Mat4     { return c.viewInv }
func (c *FreeCamera) Proj() types.Mat4        { return c.proj }
func (c *FreeCamera) ProjInv() types.Mat4     { return c.projInv }
func (c *FreeCamera) ViewProj() types.Mat4    { return c.viewProj }
func (c *FreeCamera) ViewProjInv() types.Mat4 { return c.viewProjInv }
func (c *FreeCamera) Frustum() Frustum        { return c.frustum }

// Check whether p lies strictly inside all six frustum planes.
func (c *FreeCamera) IsPointInsideFrustum(p types.Vec3) bool {
	return c.frustum.ContainsPoint(p)
}

// Recalculate the camera basis from the euler angles followed by the
// matrices and frustum planes that depend on it.
func (c *FreeCamera) update() {
	yaw := float64(types.Radians(c.yaw))
	pitch := float64(types.Radians(c.pitch))

	c.front = types.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	// Re-orthogonalize on every update so the basis does not drift.
	c.right = c.front.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()

	c.view = types.LookAtV(c.position, c.position.Add(c.front), c.up)
	c.viewProj = c.proj.Mul4(c.view)
	c.viewInv = c.view.Inv()
	c.viewProjInv = c.viewProj.Inv()

	c.frustum = FrustumFromMatrix(c.viewProj)
}
