// SPDX-License-Identifier: MIT

package tone

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvraster/pixel"
)

// Luminance weights (ITU-R BT.601).
const (
	WeightR = 0.299
	WeightG = 0.587
	WeightB = 0.114
)

// Luminance returns the BT.601 luma of an (r, g, b) triple.
func Luminance(r, g, b float64) float64 {
	return WeightR*r + WeightG*g + WeightB*b
}

// Grayscale reduces a color buffer to a grayscale one, reading channels in the
// buffer's declared order. A grayscale input is returned as an unchanged copy.
// Returns pixel.ErrShape for any other depth.
// Complexity: O(H·W).
func Grayscale(b *pixel.Buffer) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("tone.Grayscale: %w", err)
	}
	if b.IsGray() {
		return b.Clone(), nil
	}

	h, w := b.Height(), b.Width()
	out, err := pixel.New(h, w, pixel.Gray)
	if err != nil {
		return nil, err
	}
	ri, gi, bi := b.Order().Indices()
	src, dst := b.Pix(), out.Pix()
	for i := range dst {
		off := i * pixel.Color
		dst[i] = Luminance(src[off+ri], src[off+gi], src[off+bi])
	}

	return out, nil
}

// Adjust linearly remaps a grayscale buffer so that its minimum maps to newMin
// and its maximum to newMax:
//
//	out = round((v − min) · (newMax − newMin) / (max − min) + newMin)
//
// Rounding is half-to-even; the result is integer-valued.
// Color input matches both pixel.ErrDomain and pixel.ErrShape; a constant
// buffer (min == max) returns pixel.ErrDomain.
// Complexity: O(H·W).
func Adjust(b *pixel.Buffer, newMin, newMax float64) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("tone.Adjust: %w", err)
	}
	if !b.IsGray() {
		return nil, fmt.Errorf("tone.Adjust: depth %d: %w: %w", b.Depth(), pixel.ErrDomain, pixel.ErrShape)
	}
	lo, hi := b.Range()
	if hi == lo {
		return nil, fmt.Errorf("tone.Adjust: constant buffer (min = max = %g): %w", lo, pixel.ErrDomain)
	}

	out := b.Clone()
	factor := (newMax - newMin) / (hi - lo)
	dst := out.Pix()
	for i, v := range b.Pix() {
		dst[i] = math.RoundToEven((v-lo)*factor + newMin)
	}

	return out, nil
}

// Scale multiplies every sample (all channels) by factor and clips the result
// to [0,255]. Returns pixel.ErrDomain for a negative or non-finite factor.
func Scale(b *pixel.Buffer, factor float64) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("tone.Scale: %w", err)
	}
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("tone.Scale: factor %g: %w", factor, pixel.ErrDomain)
	}

	out := b.Clone()
	dst := out.Pix()
	for i, v := range dst {
		dst[i] = pixel.Clip(factor * v)
	}

	return out, nil
}
