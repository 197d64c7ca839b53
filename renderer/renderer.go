package renderer

import "context"

type Renderer interface {
	// Render frames until the configured frame count is reached, a quit
	// key is pressed or ctx is cancelled.
	Render(ctx context.Context) error

	// Shutdown renderer.
	Close()

	// Get statistics for the last rendered frame.
	Stats() FrameStats
}

// A FrameObserver is notified after every rendered frame.
type FrameObserver interface {
	ObserveFrame(stats FrameStats)
}
