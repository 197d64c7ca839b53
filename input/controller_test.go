package input

import (
	"testing"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/types"
	"github.com/stretchr/testify/require"
)

type recordingCamera struct {
	forward, right, up float32
	pitch, yaw         float32
	calls              int
}

func (c *recordingCamera) TranslateForward(delta float32) { c.forward += delta; c.calls++ }
func (c *recordingCamera) TranslateRight(delta float32)   { c.right += delta; c.calls++ }
func (c *recordingCamera) TranslateUp(delta float32)      { c.up += delta; c.calls++ }
func (c *recordingCamera) Pitch(delta float32)            { c.pitch += delta; c.calls++ }
func (c *recordingCamera) Yaw(delta float32)              { c.yaw += delta; c.calls++ }

func TestKeyMapping(t *testing.T) {
	type spec struct {
		key        Key
		expForward float32
		expRight   float32
		expUp      float32
	}
	specs := []spec{
		{KeyW, 0.1, 0, 0},
		{KeyS, -0.1, 0, 0},
		{KeyA, 0, -0.1, 0},
		{KeyD, 0, 0.1, 0},
		{KeyDown, 0, 0, -0.1},
		{KeyUp, 0, 0, 0.1},
	}

	for index, s := range specs {
		cam := &recordingCamera{}
		ctrl := NewController(cam, 0, 0)
		ctrl.Handle(Event{Type: KeyPressed, Key: s.key})

		require.Equal(t, s.expForward, cam.forward, "[spec %d] forward", index)
		require.Equal(t, s.expRight, cam.right, "[spec %d] right", index)
		require.Equal(t, s.expUp, cam.up, "[spec %d] up", index)
		require.False(t, ctrl.Quit(), "[spec %d]", index)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []Key{KeyQ, KeyEscape} {
		cam := &recordingCamera{}
		ctrl := NewController(cam, 1, 1)
		ctrl.Handle(Event{Type: KeyPressed, Key: key})
		require.True(t, ctrl.Quit())
		require.Equal(t, 0, cam.calls)
	}
}

func TestCursorRequiresLookButton(t *testing.T) {
	cam := &recordingCamera{}
	ctrl := NewController(cam, 0, 0)

	ctrl.Handle(Event{Type: CursorMoved, X: 100, Y: 100})
	require.Equal(t, 0, cam.calls)

	ctrl.Handle(Event{Type: LookPressed})
	// The first move after pressing only anchors the cursor.
	ctrl.Handle(Event{Type: CursorMoved, X: 100, Y: 100})
	require.Equal(t, 0, cam.calls)

	ctrl.Handle(Event{Type: CursorMoved, X: 110, Y: 95})
	require.InDelta(t, 10*DefaultMouseSensitivity, cam.yaw, 1e-6)
	require.InDelta(t, 5*DefaultMouseSensitivity, cam.pitch, 1e-6)

	// Releasing resets the anchor; the jump to (300, 300) is not applied.
	ctrl.Handle(Event{Type: LookReleased})
	ctrl.Handle(Event{Type: CursorMoved, X: 200, Y: 200})
	ctrl.Handle(Event{Type: LookPressed})
	ctrl.Handle(Event{Type: CursorMoved, X: 300, Y: 300})
	require.InDelta(t, 10*DefaultMouseSensitivity, cam.yaw, 1e-6)
	require.InDelta(t, 5*DefaultMouseSensitivity, cam.pitch, 1e-6)
}

func TestRelativeLook(t *testing.T) {
	cam := &recordingCamera{}
	ctrl := NewController(cam, 0, 0.5)

	ctrl.Handle(Event{Type: Look, X: 10, Y: -4})
	require.Equal(t, float32(5), cam.yaw)
	require.Equal(t, float32(2), cam.pitch)
}

func TestDriveFreeCamera(t *testing.T) {
	cam, err := camera.NewFreeCamera(types.Vec3{0, 0, 4}, 800, 600, 45, camera.ClipRange{Near: 0.01, Far: 5000})
	require.NoError(t, err)

	events, err := ParseScript("w*10, d*5, ]*3")
	require.NoError(t, err)

	ctrl := NewController(cam, 0, 0)
	for _, ev := range events {
		ctrl.Handle(ev)
	}

	require.True(t, cam.Position().ApproxEqual(types.Vec3{0.5, 0.3, 3}, 1e-4), "got %v", cam.Position())

	// Looking up past the pole is clamped by the camera.
	ctrl.Handle(Event{Type: Look, Y: -10000})
	require.Equal(t, float32(89), cam.PitchAngle())
}
