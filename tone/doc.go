// Package tone converts color buffers to luminance and remaps intensity.
//
//   - Grayscale: depth-3 → depth-1 using 0.299·R + 0.587·G + 0.114·B.
//   - Adjust:    linear remap of a grayscale buffer onto [newMin, newMax].
//   - Scale:     multiply every sample by a factor and clip to [0,255].
//
// All functions return a fresh buffer and leave their input untouched.
package tone
