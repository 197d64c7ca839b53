package camera

import "errors"

var (
	ErrRollNotSupported = errors.New("camera: roll is not supported")
	ErrInvalidViewport  = errors.New("camera: viewport dimensions must be positive")
	ErrInvalidClipRange = errors.New("camera: clip range must satisfy 0 < near < far")
	ErrInvalidFOV       = errors.New("camera: field of view must be between 0 and 180 degrees")
)
