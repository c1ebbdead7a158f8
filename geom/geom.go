// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"

	"github.com/katalvlaran/lvraster/pixel"
)

// remap builds an oh×ow buffer whose pixel (y, x) is copied from the source
// pixel returned by from(y, x). All channels move together.
func remap(op string, b *pixel.Buffer, oh, ow int, from func(y, x int) (int, int)) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("geom.%s: %w", op, err)
	}
	out, err := pixel.NewLike(b, oh, ow, b.Depth())
	if err != nil {
		return nil, fmt.Errorf("geom.%s: %w", op, err)
	}

	d := b.Depth()
	src, dst := b.Pix(), out.Pix()
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			sy, sx := from(y, x)
			copy(dst[out.Offset(y, x):out.Offset(y, x)+d], src[b.Offset(sy, sx):b.Offset(sy, sx)+d])
		}
	}

	return out, nil
}

// Transpose swaps rows and columns: out[y][x] = in[x][y].
// Complexity: O(H·W·D).
func Transpose(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.Transpose: nil buffer: %w", pixel.ErrShape)
	}
	return remap("Transpose", b, b.Width(), b.Height(), func(y, x int) (int, int) {
		return x, y
	})
}

// Rot90 rotates b 90° clockwise: transpose, then reverse the column order.
// An H×W input becomes W×H.
func Rot90(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.Rot90: nil buffer: %w", pixel.ErrShape)
	}
	h := b.Height()
	return remap("Rot90", b, b.Width(), h, func(y, x int) (int, int) {
		return h - 1 - x, y
	})
}

// RotM90 rotates b 90° counter-clockwise: reverse both axes, then apply the
// Rot90 transpose-and-reverse.
func RotM90(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.RotM90: nil buffer: %w", pixel.ErrShape)
	}
	w := b.Width()
	return remap("RotM90", b, w, b.Height(), func(y, x int) (int, int) {
		return x, w - 1 - y
	})
}

// Rot180 reverses both the row and the column order.
func Rot180(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.Rot180: nil buffer: %w", pixel.ErrShape)
	}
	h, w := b.Height(), b.Width()
	return remap("Rot180", b, h, w, func(y, x int) (int, int) {
		return h - 1 - y, w - 1 - x
	})
}

// HorFlip mirrors b left↔right by reversing the column axis.
func HorFlip(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.HorFlip: nil buffer: %w", pixel.ErrShape)
	}
	w := b.Width()
	return remap("HorFlip", b, b.Height(), w, func(y, x int) (int, int) {
		return y, w - 1 - x
	})
}

// VertFlip mirrors b top↔bottom by reversing the row axis.
func VertFlip(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.VertFlip: nil buffer: %w", pixel.ErrShape)
	}
	h := b.Height()
	return remap("VertFlip", b, h, b.Width(), func(y, x int) (int, int) {
		return h - 1 - y, x
	})
}

// Downscale keeps every second row and column, starting at index 0.
// An H×W input becomes ⌈H/2⌉×⌈W/2⌉. No interpolation or anti-aliasing.
func Downscale(b *pixel.Buffer) (*pixel.Buffer, error) {
	if b == nil {
		return nil, fmt.Errorf("geom.Downscale: nil buffer: %w", pixel.ErrShape)
	}
	return remap("Downscale", b, (b.Height()+1)/2, (b.Width()+1)/2, func(y, x int) (int, int) {
		return 2 * y, 2 * x
	})
}

// Negate maps every sample v to 255 − v, per channel.
// Complexity: O(H·W·D).
func Negate(b *pixel.Buffer) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("geom.Negate: %w", err)
	}
	out := b.Clone()
	dst := out.Pix()
	for i, v := range dst {
		dst[i] = pixel.MaxValue - v
	}
	return out, nil
}
