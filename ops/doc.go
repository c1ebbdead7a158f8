// SPDX-License-Identifier: MIT

// Package ops maps operation names to the engine's buffer transforms.
//
// The set of names is closed:
//
//	grayscale, halftone                          tone / dithering
//	mean, gaussian, sharpen, laplacian, emboss,  one per built-in kernel
//	motion, x_edge, y_edge, brighten, darken,
//	identity
//	rot90, rotm90, rot180, hor_flip, vert_flip,  geometric transforms
//	downscale, negate
//
// "negative" is accepted as an alias of "negate". Any other name fails with
// ErrUnknownOperation.
package ops
