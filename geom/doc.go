// Package geom implements lossless geometric transforms of pixel buffers.
//
// Every transform is a pure index permutation (or, for Negate, a per-sample
// map) that preserves depth and channel order and returns a new buffer.
//
// Conventions:
//
//   - Rot90 turns the image 90° clockwise, RotM90 90° counter-clockwise.
//   - HorFlip mirrors left↔right (reverses the column axis).
//   - VertFlip mirrors top↔bottom (reverses the row axis).
//   - Downscale keeps even rows and columns (2× decimation, no filtering).
package geom
