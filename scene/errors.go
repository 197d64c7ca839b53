package scene

import "errors"

var (
	ErrNilObject       = errors.New("scene: nil object")
	ErrDuplicateObject = errors.New("scene: object already added")
	ErrNegativeRadius  = errors.New("scene: object radius must not be negative")
)
