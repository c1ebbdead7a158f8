// SPDX-License-Identifier: MIT

// Package pixel defines the shared data model of lvraster: a dense,
// row-major grid of numeric samples with 1 (grayscale) or 3 (color) channels.
//
// What:
//
//   - Buffer stores height×width×depth float64 samples in a single flat slice.
//   - Depth 1 is grayscale; depth 3 is color with an explicit ChannelOrder.
//   - Constructors validate shape and deep-copy caller data.
//   - FromImage / ToImage adapt to the standard image.Image types.
//
// Lifecycle:
//
//   - Buffers are produced by a decode step, consumed by an operation and
//     replaced by a fresh buffer. Operations never mutate their input.
//
// Errors:
//
//   - ErrShape: depth is neither 1 nor 3, or the shape is wrong for an operation.
//   - ErrDomain: degenerate numeric input (e.g. zero value range).
//   - ErrEmpty, ErrNonRectangular: malformed nested input.
//   - ErrOutOfRange: index outside the buffer.
//
// Complexity: constructors and Clone are O(H·W·D); At/Set are O(1).
package pixel
