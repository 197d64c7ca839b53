package renderer

import (
	"time"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/input"
)

// An additional point of view (e.g. a shadow casting light) whose visible
// set is computed every frame alongside the camera's.
type View struct {
	Id     string
	Source camera.ViewSource
}

type Options struct {
	// Frame dims used for projecting labels.
	FrameW uint32
	FrameH uint32

	// Number of frames to render. If zero, one frame is rendered for each
	// scripted input event (and at least one frame overall).
	Frames int

	// Input events; one event is applied at the start of each frame.
	Script []input.Event

	// Camera controller tuning. Zero values select the controller defaults.
	MoveSpeed        float32
	MouseSensitivity float32

	// Delay between frames. If zero, frames are rendered back to back.
	FrameInterval time.Duration

	// Project the anchors of visible objects to screen space.
	Labels bool

	// Extra views culled each frame.
	Views []View

	// Optional frame observer.
	Observer FrameObserver
}
