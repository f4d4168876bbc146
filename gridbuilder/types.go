package gridbuilder

import "errors"

// Sentinel errors for fixture construction.
var (
	// ErrBadDimensions indicates a non-positive size or a negative gap/wall.
	ErrBadDimensions = errors.New("gridbuilder: dimensions must be positive")
	// ErrOutOfField indicates a room or pocket outside the field bounds.
	ErrOutOfField = errors.New("gridbuilder: placement exceeds the field")
)

// Rect is an axis-aligned cell rectangle: origin (X, Y), extent W×H.
type Rect struct {
	X, Y, W, H int
}
