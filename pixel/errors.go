// SPDX-License-Identifier: MIT

package pixel

import "errors"

// Every message is prefixed with "pixel: ..." for easy grepping. Operations in
// other packages wrap these sentinels with fmt.Errorf("Pkg.Op: %w", ErrX);
// callers match with errors.Is.
var (
	// ErrShape indicates a buffer depth or dimension that is invalid for the
	// requested operation (depth not in {1,3}, color buffer passed to a
	// grayscale-only operation, ...).
	ErrShape = errors.New("pixel: invalid buffer shape")

	// ErrDomain indicates degenerate numeric input, e.g. a range adjustment on
	// a buffer whose minimum equals its maximum.
	ErrDomain = errors.New("pixel: degenerate numeric domain")

	// ErrEmpty indicates nested input with no rows or no columns.
	ErrEmpty = errors.New("pixel: input must have at least one row and one column")

	// ErrNonRectangular indicates rows (or pixels) of differing lengths.
	ErrNonRectangular = errors.New("pixel: all rows must have the same length")

	// ErrOutOfRange indicates that a row, column or channel index is outside
	// valid bounds. At/Set return this, they never panic.
	ErrOutOfRange = errors.New("pixel: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf sample where finite values are required.
	ErrNaNInf = errors.New("pixel: NaN or Inf encountered")
)
