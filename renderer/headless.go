package renderer

import (
	"context"
	"time"

	"github.com/achilleasa/octocam/camera"
	"github.com/achilleasa/octocam/input"
	"github.com/achilleasa/octocam/log"
	"github.com/achilleasa/octocam/scene"
)

const cameraViewId = "camera"

// Camera is the view that the renderer drives with input events.
type Camera interface {
	camera.ViewSource
	input.Camera

	YawAngle() float32
	PitchAngle() float32
}

var _ Renderer = (*Headless)(nil)

// Headless runs the frame lifecycle without a window: for each frame it
// applies the next input event to the camera and culls the scene for every
// view.
type Headless struct {
	logger log.Logger

	scene      *scene.Scene
	camera     Camera
	controller *input.Controller
	options    Options

	stats   FrameStats
	history []FrameStats
	closed  bool
}

// Create a new headless renderer for the given scene and camera.
func NewHeadless(sc *scene.Scene, cam Camera, opts Options) (*Headless, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if cam == nil {
		return nil, ErrCameraNotDefined
	}

	return &Headless{
		logger:     log.New("headless renderer"),
		scene:      sc,
		camera:     cam,
		controller: input.NewController(cam, opts.MoveSpeed, opts.MouseSensitivity),
		options:    opts,
	}, nil
}

// Render frames until the frame budget is exhausted, a quit key is pressed
// or ctx is cancelled. Cancellation is reported as ErrInterrupted.
func (r *Headless) Render(ctx context.Context) error {
	if r.closed {
		return ErrClosed
	}

	numFrames := r.options.Frames
	if numFrames <= 0 {
		numFrames = len(r.options.Script)
		if numFrames == 0 {
			numFrames = 1
		}
	}

	for frame := 0; frame < numFrames; frame++ {
		if ctx.Err() != nil {
			return ErrInterrupted
		}

		if frame < len(r.options.Script) {
			r.controller.Handle(r.options.Script[frame])
			if r.controller.Quit() {
				r.logger.Noticef("quit requested at frame %d", frame+1)
				return nil
			}
		}

		r.renderFrame(frame + 1)

		if r.options.FrameInterval > 0 && frame+1 < numFrames {
			select {
			case <-ctx.Done():
				return ErrInterrupted
			case <-time.After(r.options.FrameInterval):
			}
		}
	}

	return nil
}

func (r *Headless) renderFrame(frame int) {
	start := time.Now()

	stats := FrameStats{
		Frame:    frame,
		Position: r.camera.Position(),
		Yaw:      r.camera.YawAngle(),
		Pitch:    r.camera.PitchAngle(),
		Views:    make([]ViewStat, 0, 1+len(r.options.Views)),
	}

	camRes := r.scene.Cull(r.camera)
	stats.Views = append(stats.Views, viewStat(cameraViewId, camRes))
	for _, view := range r.options.Views {
		stats.Views = append(stats.Views, viewStat(view.Id, r.scene.Cull(view.Source)))
	}

	if r.options.Labels {
		for _, obj := range camRes.Visible {
			x, y, ok := camera.ProjectToScreen(r.camera, obj.Anchor, int(r.options.FrameW), int(r.options.FrameH))
			if !ok {
				// Visible spheres may have their anchor off-screen.
				continue
			}
			stats.Labels = append(stats.Labels, Label{Name: obj.Name, X: x, Y: y})
		}
	}

	stats.RenderTime = time.Since(start)
	r.stats = stats
	r.history = append(r.history, stats)

	r.logger.Debugf("frame %d: %d visible objects in %s", frame, len(camRes.Visible), stats.RenderTime)
	if r.options.Observer != nil {
		r.options.Observer.ObserveFrame(stats)
	}
}

func viewStat(id string, res scene.CullResult) ViewStat {
	return ViewStat{
		Id:            id,
		Visible:       len(res.Visible),
		Tested:        res.ObjectsTested,
		NodesVisited:  res.NodesVisited,
		RegionsCulled: res.RegionsCulled,
		CullTime:      res.Duration,
	}
}

// Shutdown renderer.
func (r *Headless) Close() {
	r.closed = true
}

// Get statistics for the last rendered frame.
func (r *Headless) Stats() FrameStats {
	return r.stats
}

// Get the statistics of all rendered frames.
func (r *Headless) History() []FrameStats {
	return r.history
}
