// SPDX-License-Identifier: MIT

package halftone

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvraster/pixel"
	"github.com/katalvlaran/lvraster/tone"
)

// Scale is the block size: each source pixel becomes a Scale×Scale block.
const Scale = 3

// Halftone renders b as a binary dot image.
// Stage 1: convert to grayscale (color input only).
// Stage 2: remap intensities onto [0, Levels-1].
// Stage 3: write the mask of each pixel's level into its 3×3 output block.
//
// Errors: pixel.ErrShape for invalid input, pixel.ErrDomain for a constant
// image (no intensity range to remap), ErrIndexDefect for an adjusted level
// outside [0,9].
// Complexity: O(H·W).
func Halftone(b *pixel.Buffer) (*pixel.Buffer, error) {
	g, err := tone.Grayscale(b)
	if err != nil {
		return nil, fmt.Errorf("halftone.Halftone: %w", err)
	}
	levels, err := tone.Adjust(g, 0, Levels-1)
	if err != nil {
		return nil, fmt.Errorf("halftone.Halftone: %w", err)
	}
	return Encode(levels)
}

// Encode tiles pre-adjusted levels (a grayscale buffer of integers in 0..9)
// into a 3×-scaled dot image. It fails fast with ErrIndexDefect on any other
// value rather than truncating it.
func Encode(levels *pixel.Buffer) (*pixel.Buffer, error) {
	if err := pixel.ValidateGray(levels); err != nil {
		return nil, fmt.Errorf("halftone.Encode: %w", err)
	}
	h, w := levels.Height(), levels.Width()
	out, err := pixel.New(Scale*h, Scale*w, pixel.Gray)
	if err != nil {
		return nil, err
	}

	src, dst := levels.Pix(), out.Pix()
	ow := Scale * w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := src[y*w+x]
			if v != math.Trunc(v) || v < 0 || v >= Levels {
				return nil, fmt.Errorf("halftone.Encode: level %g at (%d,%d): %w", v, y, x, ErrIndexDefect)
			}
			m := masks[int(v)]
			for r := 0; r < Scale; r++ {
				row := (Scale*y + r) * ow
				for c := 0; c < Scale; c++ {
					dst[row+Scale*x+c] = pixel.MaxValue * float64(m[r][c])
				}
			}
		}
	}

	return out, nil
}
