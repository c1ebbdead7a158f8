// SPDX-License-Identifier: MIT

package pixel

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Gray is the depth of a grayscale buffer.
	Gray = 1
	// Color is the depth of a color buffer.
	Color = 3

	// MinValue and MaxValue bound every sample produced by a filtering operation.
	MinValue = 0.0
	MaxValue = 255.0
)

// Buffer is a height×width×depth grid of float64 samples.
// Samples are stored row-major, channels interleaved: the sample at
// (y, x, c) lives at data[(y*width+x)*depth+c].
type Buffer struct {
	h, w, d int
	order   ChannelOrder
	data    []float64 // len == h*w*d
}

// bufferErrorf wraps err with Buffer method context.
func bufferErrorf(method string, y, x, c int, err error) error {
	return fmt.Errorf("Buffer.%s(%d,%d,%d): %w", method, y, x, c, err)
}

// New creates a zero-filled buffer.
// Stage 1 (Validate): height, width > 0 and depth ∈ {1,3}.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(H·W·D).
func New(height, width, depth int, opts ...Option) (*Buffer, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("pixel.New(%d,%d,%d): %w", height, width, depth, ErrEmpty)
	}
	if err := ValidateDepth(depth); err != nil {
		return nil, fmt.Errorf("pixel.New(%d,%d,%d): %w", height, width, depth, err)
	}
	o := gatherOptions(opts...)

	return &Buffer{
		h:     height,
		w:     width,
		d:     depth,
		order: o.order,
		data:  make([]float64, height*width*depth),
	}, nil
}

// NewLike returns a zero-filled buffer of the given size that inherits the
// channel order of b. Depth is taken from the argument, not from b.
func NewLike(b *Buffer, height, width, depth int) (*Buffer, error) {
	return New(height, width, depth, WithOrder(b.order))
}

// FromGray builds a grayscale buffer from rows[y][x]. The input is deep-copied.
// Returns ErrEmpty for no rows/columns, ErrNonRectangular for ragged rows and
// ErrNaNInf for non-finite samples.
func FromGray(rows [][]float64) (*Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("pixel.FromGray: %w", ErrEmpty)
	}
	h, w := len(rows), len(rows[0])
	b, err := New(h, w, Gray)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("pixel.FromGray: row %d: %w", y, ErrNonRectangular)
		}
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("pixel.FromGray: (%d,%d): %w", y, x, ErrNaNInf)
			}
			b.data[y*w+x] = v
		}
	}

	return b, nil
}

// FromColor builds a depth-3 buffer from rows[y][x][c], with c following the
// channel order selected by opts (RGB by default). The input is deep-copied.
func FromColor(rows [][][]float64, opts ...Option) (*Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("pixel.FromColor: %w", ErrEmpty)
	}
	h, w := len(rows), len(rows[0])
	b, err := New(h, w, Color, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("pixel.FromColor: row %d: %w", y, ErrNonRectangular)
		}
		for x, px := range row {
			if len(px) != Color {
				return nil, fmt.Errorf("pixel.FromColor: (%d,%d) has %d channels: %w", y, x, len(px), ErrShape)
			}
			for c, v := range px {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("pixel.FromColor: (%d,%d,%d): %w", y, x, c, ErrNaNInf)
				}
				b.data[(y*w+x)*Color+c] = v
			}
		}
	}

	return b, nil
}

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.h }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.w }

// Depth returns the number of channels (1 or 3).
func (b *Buffer) Depth() int { return b.d }

// Order returns the channel order. Meaningful only for depth-3 buffers.
func (b *Buffer) Order() ChannelOrder { return b.order }

// IsGray reports whether b is a grayscale buffer.
func (b *Buffer) IsGray() bool { return b.d == Gray }

// Len returns the total number of samples, H·W·D.
func (b *Buffer) Len() int { return len(b.data) }

// Pix returns the backing slice. Writes through it modify b; operations in
// this module only write to buffers they allocated themselves.
func (b *Buffer) Pix() []float64 { return b.data }

// Offset returns the index in Pix of channel 0 of pixel (y, x).
// No bounds checks; use At/Set for checked access.
func (b *Buffer) Offset(y, x int) int { return (y*b.w + x) * b.d }

// indexOf computes the flat index for (y, x, c) or returns ErrOutOfRange.
func (b *Buffer) indexOf(method string, y, x, c int) (int, error) {
	if y < 0 || y >= b.h || x < 0 || x >= b.w || c < 0 || c >= b.d {
		return 0, bufferErrorf(method, y, x, c, ErrOutOfRange)
	}
	return b.Offset(y, x) + c, nil
}

// At returns the sample at row y, column x, channel c.
// Complexity: O(1).
func (b *Buffer) At(y, x, c int) (float64, error) {
	idx, err := b.indexOf("At", y, x, c)
	if err != nil {
		return 0, err
	}
	return b.data[idx], nil
}

// Set assigns v to the sample at row y, column x, channel c.
// Non-finite values are rejected with ErrNaNInf.
func (b *Buffer) Set(y, x, c int, v float64) error {
	idx, err := b.indexOf("Set", y, x, c)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return bufferErrorf("Set", y, x, c, ErrNaNInf)
	}
	b.data[idx] = v

	return nil
}

// Clone returns a deep copy of b.
// Complexity: O(H·W·D).
func (b *Buffer) Clone() *Buffer {
	data := make([]float64, len(b.data))
	copy(data, b.data)

	return &Buffer{h: b.h, w: b.w, d: b.d, order: b.order, data: data}
}

// Equal reports whether a and b have identical shape, channel order (for
// color buffers) and samples.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.h != o.h || b.w != o.w || b.d != o.d {
		return false
	}
	if b.d == Color && b.order != o.order {
		return false
	}
	for i, v := range b.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Range returns the minimum and maximum sample over all channels.
// Complexity: O(H·W·D).
func (b *Buffer) Range() (lo, hi float64) {
	lo, hi = b.data[0], b.data[0]
	for _, v := range b.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Gray2D returns the samples of a grayscale buffer as rows[y][x].
func (b *Buffer) Gray2D() ([][]float64, error) {
	if b.d != Gray {
		return nil, fmt.Errorf("Buffer.Gray2D: depth %d: %w", b.d, ErrShape)
	}
	rows := make([][]float64, b.h)
	for y := range rows {
		rows[y] = make([]float64, b.w)
		copy(rows[y], b.data[y*b.w:(y+1)*b.w])
	}
	return rows, nil
}

// Color3D returns the samples of a color buffer as rows[y][x][c].
func (b *Buffer) Color3D() ([][][]float64, error) {
	if b.d != Color {
		return nil, fmt.Errorf("Buffer.Color3D: depth %d: %w", b.d, ErrShape)
	}
	rows := make([][][]float64, b.h)
	for y := range rows {
		rows[y] = make([][]float64, b.w)
		for x := range rows[y] {
			off := b.Offset(y, x)
			rows[y][x] = []float64{b.data[off], b.data[off+1], b.data[off+2]}
		}
	}
	return rows, nil
}

// String implements fmt.Stringer for debugging. Color pixels print as (c0 c1 c2).
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.h; y++ {
		sb.WriteByte('[')
		for x := 0; x < b.w; x++ {
			if x > 0 {
				sb.WriteString(", ")
			}
			off := b.Offset(y, x)
			if b.d == Gray {
				fmt.Fprintf(&sb, "%g", b.data[off])
				continue
			}
			fmt.Fprintf(&sb, "(%g %g %g)", b.data[off], b.data[off+1], b.data[off+2])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// Clip limits v to [MinValue, MaxValue]. Negative zero becomes +0.
func Clip(v float64) float64 {
	if v <= MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// ValidateDepth returns ErrShape unless depth is 1 or 3.
func ValidateDepth(depth int) error {
	if depth != Gray && depth != Color {
		return ErrShape
	}
	return nil
}

// Validate checks that b is non-nil and internally consistent.
func Validate(b *Buffer) error {
	if b == nil {
		return fmt.Errorf("pixel.Validate: nil buffer: %w", ErrShape)
	}
	if err := ValidateDepth(b.d); err != nil {
		return fmt.Errorf("pixel.Validate: depth %d: %w", b.d, err)
	}
	if b.h <= 0 || b.w <= 0 || len(b.data) != b.h*b.w*b.d {
		return fmt.Errorf("pixel.Validate: %dx%dx%d with %d samples: %w", b.h, b.w, b.d, len(b.data), ErrShape)
	}
	return nil
}

// ValidateGray is Validate plus a grayscale-only check.
func ValidateGray(b *Buffer) error {
	if err := Validate(b); err != nil {
		return err
	}
	if b.d != Gray {
		return fmt.Errorf("pixel.ValidateGray: depth %d: %w", b.d, ErrShape)
	}
	return nil
}
