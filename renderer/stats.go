package renderer

import (
	"time"

	"github.com/achilleasa/octocam/types"
)

type ViewStat struct {
	// The view id; the camera is always reported as "camera".
	Id string

	// Number of visible and tested objects.
	Visible int
	Tested  int

	// Octree traversal counters.
	NodesVisited  int
	RegionsCulled int

	// Time spent culling the scene for this view.
	CullTime time.Duration
}

// A Label is the screen position of a visible object anchor.
type Label struct {
	Name string
	X, Y float32
}

type FrameStats struct {
	// Frame number, starting from 1.
	Frame int

	// Camera state after applying the frame input.
	Position types.Vec3
	Yaw      float32
	Pitch    float32

	// Individual view stats; the camera view is always first.
	Views []ViewStat

	// Labels for the objects visible from the camera, if enabled.
	Labels []Label

	// Total render time for entire frame.
	RenderTime time.Duration
}
