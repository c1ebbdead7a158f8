package halftone

import "errors"

// ErrIndexDefect indicates an adjusted intensity that is not an integer in
// [0, Levels-1]. It signals a defect in the upstream range adjustment.
var ErrIndexDefect = errors.New("halftone: intensity index out of range")
