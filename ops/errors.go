package ops

import "errors"

// ErrUnknownOperation indicates an operation name outside the closed set.
var ErrUnknownOperation = errors.New("ops: unknown operation")
