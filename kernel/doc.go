// SPDX-License-Identifier: MIT

// Package kernel provides square, odd-sized convolution weight matrices and a
// read-only table of named kernels.
//
// Built-in kernels:
//
//	mean, gaussian            3×3 smoothing
//	sharpen, laplacian        3×3 detail / edge enhancement
//	emboss                    3×3 relief
//	motion                    9×9 diagonal motion blur
//	x_edge, y_edge            3×3 Sobel-style gradients
//	brighten, darken          3×3 center scaling by 1.25 / 0.75
//	identity                  3×3 pass-through
//
// Weights are addressed as At(i, j) with i in the column direction of the
// image and j in the row direction; see package convolve for the sampling rule.
//
// Kernel values are immutable: the table hands out values whose weights can
// only be read.
package kernel
