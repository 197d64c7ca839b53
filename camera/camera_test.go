package camera

import (
	"testing"

	"github.com/achilleasa/octocam/types"
	"github.com/stretchr/testify/require"
)

const planeEpsilon = 1e-5

func defaultCamera(t *testing.T) *FreeCamera {
	cam, err := NewFreeCamera(types.Vec3{0, 0, 4}, 800, 600, 45, ClipRange{Near: 0.1, Far: 100})
	require.NoError(t, err)
	return cam
}

func requireNormalizedPlanes(t *testing.T, f Frustum) {
	for i, pl := range f {
		require.InDelta(t, 1.0, pl.Normal.Len(), planeEpsilon, "plane %d: %s", i, pl)
	}
}

func TestNewFreeCameraValidation(t *testing.T) {
	type spec struct {
		width, height int
		fov           float32
		clip          ClipRange
		expErr        error
	}
	specs := []spec{
		{0, 600, 45, ClipRange{0.1, 100}, ErrInvalidViewport},
		{800, -1, 45, ClipRange{0.1, 100}, ErrInvalidViewport},
		{800, 600, 0, ClipRange{0.1, 100}, ErrInvalidFOV},
		{800, 600, 180, ClipRange{0.1, 100}, ErrInvalidFOV},
		{800, 600, 45, ClipRange{0, 100}, ErrInvalidClipRange},
		{800, 600, 45, ClipRange{10, 1}, ErrInvalidClipRange},
		{800, 600, 45, ClipRange{1, 1}, ErrInvalidClipRange},
	}

	for index, s := range specs {
		_, err := NewFreeCamera(types.Vec3{}, s.width, s.height, s.fov, s.clip)
		require.ErrorIs(t, err, s.expErr, "[spec %d]", index)
	}
}

func TestDefaultOrientation(t *testing.T) {
	cam := defaultCamera(t)

	require.True(t, cam.Front().ApproxEqual(types.Vec3{0, 0, -1}, 1e-6), "front: %v", cam.Front())
	require.True(t, cam.Right().ApproxEqual(types.Vec3{1, 0, 0}, 1e-6), "right: %v", cam.Right())
	require.True(t, cam.Up().ApproxEqual(types.Vec3{0, 1, 0}, 1e-6), "up: %v", cam.Up())
	require.Equal(t, float32(-90), cam.YawAngle())
	require.Equal(t, float32(0), cam.PitchAngle())
	requireNormalizedPlanes(t, cam.Frustum())
}

func TestOriginScenario(t *testing.T) {
	cam := defaultCamera(t)

	require.True(t, cam.IsPointInsideFrustum(types.Vec3{0, 0, 0}))
	require.False(t, cam.IsPointInsideFrustum(types.Vec3{0, 0, 200}))

	// Beyond the far plane in front of the camera.
	require.False(t, cam.IsPointInsideFrustum(types.Vec3{0, 0, -200}))
	// Closer than the near plane.
	require.False(t, cam.IsPointInsideFrustum(types.Vec3{0, 0, 3.95}))
}

func TestTranslate(t *testing.T) {
	cam := defaultCamera(t)

	cam.TranslateForward(2)
	require.True(t, cam.Position().ApproxEqual(types.Vec3{0, 0, 2}, 1e-5), "got %v", cam.Position())
	cam.TranslateRight(1)
	require.True(t, cam.Position().ApproxEqual(types.Vec3{1, 0, 2}, 1e-5), "got %v", cam.Position())
	cam.TranslateUp(3)
	require.True(t, cam.Position().ApproxEqual(types.Vec3{1, 3, 2}, 1e-5), "got %v", cam.Position())

	// The frustum follows the camera.
	require.True(t, cam.IsPointInsideFrustum(types.Vec3{1, 3, 0}))
	require.False(t, cam.IsPointInsideFrustum(types.Vec3{1, 3, 50}))
}

func TestYaw(t *testing.T) {
	cam := defaultCamera(t)

	cam.Yaw(90)
	require.Equal(t, float32(0), cam.YawAngle())
	require.True(t, cam.Front().ApproxEqual(types.Vec3{1, 0, 0}, 1e-6), "front: %v", cam.Front())
	require.True(t, cam.Right().ApproxEqual(types.Vec3{0, 0, 1}, 1e-6), "right: %v", cam.Right())

	require.True(t, cam.IsPointInsideFrustum(types.Vec3{10, 0, 4}))
	require.False(t, cam.IsPointInsideFrustum(types.Vec3{-10, 0, 4}))

	// Yaw is not bounded.
	cam.Yaw(720)
	require.Equal(t, float32(720), cam.YawAngle())
	require.True(t, cam.Front().ApproxEqual(types.Vec3{1, 0, 0}, 1e-5), "front: %v", cam.Front())
}

func TestPitchClamp(t *testing.T) {
	cam := defaultCamera(t)

	for i := 0; i < 20; i++ {
		cam.Pitch(10)
	}
	require.Equal(t, float32(89), cam.PitchAngle())
	require.True(t, cam.Front()[1] > 0.99, "front: %v", cam.Front())
	requireNormalizedPlanes(t, cam.Frustum())

	cam.Pitch(-500)
	require.Equal(t, float32(-89), cam.PitchAngle())
	require.True(t, cam.Front()[1] < -0.99, "front: %v", cam.Front())

	cam.SetOrientation(-90, 120)
	require.Equal(t, float32(89), cam.PitchAngle())
}

func TestRollIsRejected(t *testing.T) {
	cam := defaultCamera(t)
	before := cam.View()

	require.ErrorIs(t, cam.Roll(30), ErrRollNotSupported)
	require.Equal(t, before, cam.View())
	require.Equal(t, types.Vec3{0, 0, 4}, cam.Position())
}

func TestBasisAndPlanesAfterMutations(t *testing.T) {
	cam := defaultCamera(t)

	mutations := []func(){
		func() { cam.Yaw(33) },
		func() { cam.Pitch(-27) },
		func() { cam.TranslateForward(5) },
		func() { cam.TranslateRight(-2.5) },
		func() { cam.TranslateUp(1) },
		func() { cam.Yaw(-171) },
		func() { cam.Pitch(80) },
		func() { require.NoError(t, cam.SetProjection(70, 1920, 1080, ClipRange{0.5, 2000})) },
	}

	for index, mutate := range mutations {
		mutate()

		require.InDelta(t, 1.0, cam.Front().Len(), 1e-5, "[mutation %d] front", index)
		require.InDelta(t, 1.0, cam.Right().Len(), 1e-5, "[mutation %d] right", index)
		require.InDelta(t, 1.0, cam.Up().Len(), 1e-5, "[mutation %d] up", index)
		require.InDelta(t, 0.0, cam.Front().Dot(cam.Right()), 1e-5, "[mutation %d] front.right", index)
		require.InDelta(t, 0.0, cam.Front().Dot(cam.Up()), 1e-5, "[mutation %d] front.up", index)
		require.InDelta(t, 0.0, cam.Right().Dot(cam.Up()), 1e-5, "[mutation %d] right.up", index)

		requireNormalizedPlanes(t, cam.Frustum())

		// A point just in front of the eye is visible; one far behind is not.
		inFront := cam.Position().Add(cam.Front().Mul(1))
		behind := cam.Position().Sub(cam.Front().Mul(1000))
		require.True(t, cam.IsPointInsideFrustum(inFront), "[mutation %d] in front", index)
		require.False(t, cam.IsPointInsideFrustum(behind), "[mutation %d] behind", index)

		require.True(t, cam.View().Mul4(cam.ViewInv()).ApproxEqual(types.Ident4(), 1e-4), "[mutation %d] view inverse", index)
		require.True(t, cam.Proj().Mul4(cam.ProjInv()).ApproxEqual(types.Ident4(), 1e-3), "[mutation %d] proj inverse", index)
		require.True(t, cam.ViewProj().ApproxEqual(cam.Proj().Mul4(cam.View()), 1e-5), "[mutation %d] view proj", index)
	}
}

func TestSetProjectionRejectsInvalid(t *testing.T) {
	cam := defaultCamera(t)
	proj := cam.Proj()

	require.ErrorIs(t, cam.SetProjection(45, 0, 0, ClipRange{0.1, 100}), ErrInvalidViewport)
	require.Equal(t, proj, cam.Proj())
	w, h := cam.Viewport()
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)
}
