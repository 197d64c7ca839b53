package input

import "github.com/achilleasa/octocam/log"

const (
	// Camera movement per key press.
	DefaultMoveSpeed float32 = 0.1

	// Coefficient for converting cursor movements to yaw/pitch degrees.
	DefaultMouseSensitivity float32 = 0.08
)

var logger = log.New("input")

// Camera is the set of camera operations driven by user input.
type Camera interface {
	TranslateForward(delta float32)
	TranslateRight(delta float32)
	TranslateUp(delta float32)
	Pitch(deltaDegrees float32)
	Yaw(deltaDegrees float32)
}

// Key identifies a keyboard key.
type Key rune

const (
	KeyW      Key = 'w'
	KeyS      Key = 's'
	KeyA      Key = 'a'
	KeyD      Key = 'd'
	KeyUp     Key = ']'
	KeyDown   Key = '['
	KeyQ      Key = 'q'
	KeyEscape Key = 0x1b
)

type EventType uint8

const (
	// A key was pressed.
	KeyPressed EventType = iota

	// The look button was pressed or released. Cursor movements only rotate
	// the camera while the look button is held.
	LookPressed
	LookReleased

	// The cursor moved to the absolute window position (X, Y).
	CursorMoved

	// Relative cursor motion by (X, Y); applied regardless of the look
	// button state.
	Look
)

// An Event is a single user input.
type Event struct {
	Type EventType
	Key  Key
	X, Y float32
}

// Controller maps input events onto camera operations.
type Controller struct {
	cam         Camera
	moveSpeed   float32
	sensitivity float32

	looking    bool
	firstTouch bool
	lastX      float32
	lastY      float32

	quit bool
}

// Create a controller for the given camera. Non-positive speed or
// sensitivity values are replaced with the defaults.
func NewController(cam Camera, moveSpeed, sensitivity float32) *Controller {
	if moveSpeed <= 0 {
		moveSpeed = DefaultMoveSpeed
	}
	if sensitivity <= 0 {
		sensitivity = DefaultMouseSensitivity
	}

	return &Controller{
		cam:         cam,
		moveSpeed:   moveSpeed,
		sensitivity: sensitivity,
		firstTouch:  true,
	}
}

// Check whether a quit key has been pressed.
func (c *Controller) Quit() bool {
	return c.quit
}

// Handle applies an input event to the camera.
func (c *Controller) Handle(ev Event) {
	switch ev.Type {
	case KeyPressed:
		c.onKey(ev.Key)
	case LookPressed:
		c.looking = true
	case LookReleased:
		c.looking = false
		c.firstTouch = true
	case CursorMoved:
		if c.looking {
			c.onCursor(ev.X, ev.Y)
		}
	case Look:
		c.rotate(ev.X, -ev.Y)
	default:
		logger.Warningf("ignoring unknown input event type %d", ev.Type)
	}
}

func (c *Controller) onKey(key Key) {
	switch key {
	case KeyQ, KeyEscape:
		c.quit = true
	case KeyA:
		c.cam.TranslateRight(-c.moveSpeed)
	case KeyD:
		c.cam.TranslateRight(c.moveSpeed)
	case KeyW:
		c.cam.TranslateForward(c.moveSpeed)
	case KeyS:
		c.cam.TranslateForward(-c.moveSpeed)
	case KeyDown:
		c.cam.TranslateUp(-c.moveSpeed)
	case KeyUp:
		c.cam.TranslateUp(c.moveSpeed)
	}
}

func (c *Controller) onCursor(x, y float32) {
	// The first movement after pressing the look button only anchors the
	// cursor so the camera does not jump.
	if c.firstTouch {
		c.lastX, c.lastY = x, y
		c.firstTouch = false
	}

	// Window y coordinates grow downwards.
	dx, dy := x-c.lastX, c.lastY-y
	c.lastX, c.lastY = x, y
	c.rotate(dx, dy)
}

func (c *Controller) rotate(dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}
	c.cam.Pitch(dy * c.sensitivity)
	c.cam.Yaw(dx * c.sensitivity)
}
