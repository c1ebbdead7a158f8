package tone_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvraster/pixel"
	"github.com/katalvlaran/lvraster/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gray(t *testing.T, rows [][]float64) *pixel.Buffer {
	t.Helper()
	b, err := pixel.FromGray(rows)
	require.NoError(t, err)
	return b
}

// TestGrayscale_Luminance checks the BT.601 weights in both channel orders.
func TestGrayscale_Luminance(t *testing.T) {
	px := [][][]float64{{{100, 50, 200}}}

	rgb, err := pixel.FromColor(px)
	require.NoError(t, err)
	g, err := tone.Grayscale(rgb)
	require.NoError(t, err)
	require.True(t, g.IsGray())
	v, _ := g.At(0, 0, 0)
	assert.InDelta(t, 0.299*100+0.587*50+0.114*200, v, 1e-9)

	bgr, err := pixel.FromColor(px, pixel.WithOrder(pixel.BGR))
	require.NoError(t, err)
	g, err = tone.Grayscale(bgr)
	require.NoError(t, err)
	v, _ = g.At(0, 0, 0)
	assert.InDelta(t, 0.299*200+0.587*50+0.114*100, v, 1e-9, "BGR reads red from channel 2")
}

// TestGrayscale_Idempotent: converting twice equals converting once, and a
// grayscale input comes back as an equal copy.
func TestGrayscale_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][][]float64, 4)
	for y := range rows {
		rows[y] = make([][]float64, 5)
		for x := range rows[y] {
			rows[y][x] = []float64{float64(rng.Intn(256)), float64(rng.Intn(256)), float64(rng.Intn(256))}
		}
	}
	c, err := pixel.FromColor(rows)
	require.NoError(t, err)

	once, err := tone.Grayscale(c)
	require.NoError(t, err)
	twice, err := tone.Grayscale(once)
	require.NoError(t, err)
	assert.True(t, once.Equal(twice))
	assert.NotSame(t, once, twice, "grayscale input must come back as a fresh buffer")

	twice.Pix()[0] = -1
	v, _ := once.At(0, 0, 0)
	assert.NotEqual(t, -1.0, v, "writing the result must not touch the input")
}

// TestGrayscale_BadShape rejects invalid buffers.
func TestGrayscale_BadShape(t *testing.T) {
	_, err := tone.Grayscale(&pixel.Buffer{})
	assert.ErrorIs(t, err, pixel.ErrShape)
}

// TestAdjust_Scenario maps [[0,85],[170,255]] onto [0,9].
func TestAdjust_Scenario(t *testing.T) {
	out, err := tone.Adjust(gray(t, [][]float64{{0, 85}, {170, 255}}), 0, 9)
	require.NoError(t, err)
	rows, err := out.Gray2D()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 3}, {6, 9}}, rows)
}

// TestAdjust_Bounds checks that output stays inside [0,9] and hits both ends.
func TestAdjust_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 16)
	for y := range rows {
		rows[y] = make([]float64, 16)
		for x := range rows[y] {
			rows[y][x] = rng.Float64() * 255
		}
	}
	rows[3][4], rows[9][1] = -1, 300 // force distinct extremes

	out, err := tone.Adjust(gray(t, rows), 0, 9)
	require.NoError(t, err)
	lo, hi := out.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 9.0, hi)
	for _, v := range out.Pix() {
		assert.Equal(t, float64(int(v)), v, "samples must be integer-valued")
	}
}

// TestAdjust_Errors covers constant and color input.
func TestAdjust_Errors(t *testing.T) {
	_, err := tone.Adjust(gray(t, [][]float64{{4, 4}, {4, 4}}), 0, 9)
	assert.ErrorIs(t, err, pixel.ErrDomain)

	c, err := pixel.New(2, 2, pixel.Color)
	require.NoError(t, err)
	_, err = tone.Adjust(c, 0, 9)
	assert.ErrorIs(t, err, pixel.ErrDomain, "color input is outside the adjuster's domain")
	assert.ErrorIs(t, err, pixel.ErrShape)

	_, err = tone.Adjust(nil, 0, 9)
	assert.ErrorIs(t, err, pixel.ErrShape)
	assert.NotErrorIs(t, err, pixel.ErrDomain)
}

// TestAdjust_DoesNotMutate ensures the input buffer is untouched.
func TestAdjust_DoesNotMutate(t *testing.T) {
	in := gray(t, [][]float64{{10, 20}})
	before := in.Clone()
	_, err := tone.Adjust(in, 0, 1)
	require.NoError(t, err)
	assert.True(t, before.Equal(in))
}

// TestScale clips and rejects negative factors.
func TestScale(t *testing.T) {
	out, err := tone.Scale(gray(t, [][]float64{{100, 200}}), 1.5)
	require.NoError(t, err)
	rows, _ := out.Gray2D()
	assert.Equal(t, [][]float64{{150, 255}}, rows)

	_, err = tone.Scale(gray(t, [][]float64{{1}}), -1)
	assert.ErrorIs(t, err, pixel.ErrDomain)
}
