// Package lvraster is a small raster image-processing engine that works on
// decoded pixel buffers.
//
// What it does:
//
//   - Grayscale conversion (BT.601 luminance) and linear range adjustment.
//   - 3×3 ordered-dither halftoning.
//   - Convolution with named kernels and toroidal (wrap-around) boundaries.
//   - Lossless geometric transforms: ±90°/180° rotation, flips, 2× decimation,
//     negation.
//
// Under the hood, everything is organized under these subpackages:
//
//	pixel/     Buffer (H×W×D samples), channel order, shared errors
//	kernel/    immutable kernels and the read-only named table
//	tone/      Grayscale, Adjust, Scale
//	halftone/  dot masks and the halftone encoder
//	convolve/  wrap-around convolution with optional row workers
//	geom/      rotations, flips, downscale, negate
//	ops/       closed name → operation selector and pipelines
//	imageio/   decode/encode adapters (outside the engine)
//	cmd/rasterctl/ command-line wrapper
//
// Quick example:
//
//	b, _ := pixel.FromGray([][]float64{{0, 85}, {170, 255}})
//	out, err := ops.Apply("halftone", b)
package lvraster
