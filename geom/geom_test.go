package geom_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvraster/geom"
	"github.com/katalvlaran/lvraster/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transform func(*pixel.Buffer) (*pixel.Buffer, error)

// seq returns an h×w grayscale buffer holding 0, 1, 2, ... row-major.
func seq(t *testing.T, h, w int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(h, w, pixel.Gray)
	require.NoError(t, err)
	for i := range b.Pix() {
		b.Pix()[i] = float64(i)
	}
	return b
}

func randomColor(t *testing.T, h, w int) *pixel.Buffer {
	t.Helper()
	rng := rand.New(rand.NewSource(int64(h*31 + w)))
	b, err := pixel.New(h, w, pixel.Color, pixel.WithOrder(pixel.BGR))
	require.NoError(t, err)
	for i := range b.Pix() {
		b.Pix()[i] = float64(rng.Intn(256))
	}
	return b
}

func apply(t *testing.T, b *pixel.Buffer, fs ...transform) *pixel.Buffer {
	t.Helper()
	for _, f := range fs {
		var err error
		b, err = f(b)
		require.NoError(t, err)
	}
	return b
}

func rows(t *testing.T, b *pixel.Buffer) [][]float64 {
	t.Helper()
	r, err := b.Gray2D()
	require.NoError(t, err)
	return r
}

// TestTransforms_Small pins each transform on a 2×3 sequential buffer:
//
//	0 1 2
//	3 4 5
func TestTransforms_Small(t *testing.T) {
	cases := []struct {
		name string
		f    transform
		want [][]float64
	}{
		{"Transpose", geom.Transpose, [][]float64{{0, 3}, {1, 4}, {2, 5}}},
		{"Rot90", geom.Rot90, [][]float64{{3, 0}, {4, 1}, {5, 2}}},
		{"RotM90", geom.RotM90, [][]float64{{2, 5}, {1, 4}, {0, 3}}},
		{"Rot180", geom.Rot180, [][]float64{{5, 4, 3}, {2, 1, 0}}},
		{"HorFlip", geom.HorFlip, [][]float64{{2, 1, 0}, {5, 4, 3}}},
		{"VertFlip", geom.VertFlip, [][]float64{{3, 4, 5}, {0, 1, 2}}},
		{"Downscale", geom.Downscale, [][]float64{{0, 2}}},
		{"Negate", geom.Negate, [][]float64{{255, 254, 253}, {252, 251, 250}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := seq(t, 2, 3)
			out := apply(t, in, tc.f)
			if diff := cmp.Diff(tc.want, rows(t, out)); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tc.name, diff)
			}
			assert.True(t, seq(t, 2, 3).Equal(in), "input must not be mutated")
		})
	}
}

// TestRotation_GroupAction checks rot90⁴ = id, rotm90∘rot90 = id and
// rot180 = rot90², on color input.
func TestRotation_GroupAction(t *testing.T) {
	in := randomColor(t, 5, 3)

	assert.True(t, in.Equal(apply(t, in, geom.Rot90, geom.Rot90, geom.Rot90, geom.Rot90)))
	assert.True(t, in.Equal(apply(t, in, geom.Rot90, geom.RotM90)))
	assert.True(t, in.Equal(apply(t, in, geom.RotM90, geom.Rot90)))
	assert.True(t, apply(t, in, geom.Rot180).Equal(apply(t, in, geom.Rot90, geom.Rot90)))
	assert.True(t, in.Equal(apply(t, in, geom.HorFlip, geom.HorFlip)))
	assert.True(t, in.Equal(apply(t, in, geom.VertFlip, geom.VertFlip)))
	assert.True(t, apply(t, in, geom.Rot180).Equal(apply(t, in, geom.HorFlip, geom.VertFlip)))
}

// TestNegate_Involution: negate(negate(x)) == x, per channel.
func TestNegate_Involution(t *testing.T) {
	in := randomColor(t, 4, 4)
	assert.True(t, in.Equal(apply(t, in, geom.Negate, geom.Negate)))

	once := apply(t, in, geom.Negate)
	assert.Equal(t, pixel.BGR, once.Order())
	v, _ := in.At(2, 1, 2)
	n, _ := once.At(2, 1, 2)
	assert.Equal(t, 255-v, n)
}

// TestDownscale_4x4 keeps only even row/column indices.
func TestDownscale_4x4(t *testing.T) {
	out := apply(t, seq(t, 4, 4), geom.Downscale)
	assert.Equal(t, [][]float64{{0, 2}, {8, 10}}, rows(t, out))

	odd := apply(t, seq(t, 3, 5), geom.Downscale)
	assert.Equal(t, 2, odd.Height())
	assert.Equal(t, 3, odd.Width())
}

// TestDownscale_Color moves all channels of a pixel together.
func TestDownscale_Color(t *testing.T) {
	in, err := pixel.FromColor([][][]float64{
		{{1, 2, 3}, {4, 5, 6}},
		{{7, 8, 9}, {10, 11, 12}},
	})
	require.NoError(t, err)
	out := apply(t, in, geom.Downscale)
	px, err := out.Color3D()
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{{{1, 2, 3}}}, px)
}

// TestTransforms_BadInput rejects nil and zero-value buffers.
func TestTransforms_BadInput(t *testing.T) {
	fs := map[string]transform{
		"Transpose": geom.Transpose, "Rot90": geom.Rot90, "RotM90": geom.RotM90,
		"Rot180": geom.Rot180, "HorFlip": geom.HorFlip, "VertFlip": geom.VertFlip,
		"Downscale": geom.Downscale, "Negate": geom.Negate,
	}
	for name, f := range fs {
		_, err := f(nil)
		assert.ErrorIs(t, err, pixel.ErrShape, name)
		_, err = f(&pixel.Buffer{})
		assert.ErrorIs(t, err, pixel.ErrShape, name)
	}
}
