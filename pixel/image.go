// SPDX-License-Identifier: MIT

package pixel

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// FromImage converts a decoded image into a Buffer with 8-bit sample values.
// *image.Gray and *image.Gray16 yield depth-1 buffers; everything else yields
// a depth-3 buffer in the channel order chosen by opts. Alpha is discarded.
// Complexity: O(H·W).
func FromImage(img image.Image, opts ...Option) (*Buffer, error) {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("pixel.FromImage: %w", ErrEmpty)
	}

	switch src := img.(type) {
	case *image.Gray:
		b, err := New(h, w, Gray, opts...)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.data[y*w+x] = float64(src.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return b, nil
	case *image.Gray16:
		b, err := New(h, w, Gray, opts...)
		if err != nil {
			return nil, err
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				b.data[y*w+x] = float64(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y >> 8)
			}
		}
		return b, nil
	}

	b, err := New(h, w, Color, opts...)
	if err != nil {
		return nil, err
	}
	ri, gi, bi := b.order.Indices()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			off := b.Offset(y, x)
			b.data[off+ri] = float64(c.R)
			b.data[off+gi] = float64(c.G)
			b.data[off+bi] = float64(c.B)
		}
	}
	return b, nil
}

// toByte rounds v half-to-even and clips it into a uint8.
func toByte(v float64) uint8 {
	return uint8(Clip(math.RoundToEven(v)))
}

// ToImage converts b into an *image.Gray (depth 1) or *image.RGBA (depth 3,
// fully opaque). Samples are rounded and clipped to [0,255].
func (b *Buffer) ToImage() (image.Image, error) {
	if err := Validate(b); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, b.w, b.h)
	if b.d == Gray {
		img := image.NewGray(rect)
		for y := 0; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				img.SetGray(x, y, color.Gray{Y: toByte(b.data[y*b.w+x])})
			}
		}
		return img, nil
	}

	img := image.NewRGBA(rect)
	ri, gi, bi := b.order.Indices()
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			off := b.Offset(y, x)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(b.data[off+ri]),
				G: toByte(b.data[off+gi]),
				B: toByte(b.data[off+bi]),
				A: 0xff,
			})
		}
	}
	return img, nil
}
