// SPDX-License-Identifier: MIT

// Package convolve applies square kernels to pixel buffers with toroidal
// (wrap-around) boundary handling.
//
// Sampling rule, for output pixel (y, x), channel ch and kernel cell (i, j):
//
//	src[(y − center + j) mod H][(x − center + i) mod W][ch] · K[i][j]
//
// Boundaries wrap: the row above row 0 is row H−1, the column left of column
// 0 is column W−1. Nothing is clamped or zero-padded, so the output has the
// input's shape and no edge darkening, at the cost of seams on images whose
// opposite edges differ.
//
// Numeric policy:
//
//   - Sums accumulate in float64.
//   - Grayscale results round half-to-even; color results truncate toward
//     zero. Before either, a sum within Epsilon of an integer snaps to it so
//     that, e.g., nine samples of v weighted 1/9 give back v.
//   - Every result is clipped to [0,255].
//
// Concurrency: rows are independent and read only from the source buffer,
// so WithWorkers(n) splits them across n goroutines.
package convolve
