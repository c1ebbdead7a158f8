// SPDX-License-Identifier: MIT

package convolve

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvraster/kernel"
	"github.com/katalvlaran/lvraster/pixel"
)

// Apply convolves b with the built-in kernel called name.
// Returns kernel.ErrUnknownKernel for an unknown name and pixel.ErrShape for
// an invalid buffer.
func Apply(b *pixel.Buffer, name string, opts ...Option) (*pixel.Buffer, error) {
	k, err := kernel.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("convolve.Apply: %w", err)
	}
	return Kernel(b, k, opts...)
}

// Kernel convolves every channel of b with k independently and returns a new
// buffer of the same shape and channel order.
// Complexity: O(H·W·D·dim²) time, O(H·W·D + H·dim + W·dim) memory.
func Kernel(b *pixel.Buffer, k kernel.Kernel, opts ...Option) (*pixel.Buffer, error) {
	if err := pixel.Validate(b); err != nil {
		return nil, fmt.Errorf("convolve.Kernel: %w", err)
	}
	if k.Dim() == 0 {
		return nil, fmt.Errorf("convolve.Kernel: zero kernel: %w", kernel.ErrBadKernel)
	}
	o := gatherOptions(opts...)

	out := b.Clone()
	c := &conv{
		src:   b.Pix(),
		dst:   out.Pix(),
		h:     b.Height(),
		w:     b.Width(),
		d:     b.Depth(),
		k:     k,
		rows:  wrapTable(b.Height(), k),
		cols:  wrapTable(b.Width(), k),
		eps:   o.eps,
		round: b.IsGray(),
	}

	workers := o.workers
	if workers > c.h {
		workers = c.h
	}
	if workers <= 1 {
		c.rowRange(0, c.h)
		return out, nil
	}

	var g errgroup.Group
	chunk := (c.h + workers - 1) / workers
	for lo := 0; lo < c.h; lo += chunk {
		lo, hi := lo, min(lo+chunk, c.h)
		g.Go(func() error {
			c.rowRange(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// conv holds the read-only state shared by all row workers. Workers write to
// disjoint rows of dst.
type conv struct {
	src, dst   []float64
	h, w, d    int
	k          kernel.Kernel
	rows, cols [][]int
	eps        float64
	round      bool
}

// wrapTable returns t[p][n] = (p − center + n) mod size for every position p
// along an axis of the given size and every kernel offset n.
func wrapTable(size int, k kernel.Kernel) [][]int {
	dim, center := k.Dim(), k.Center()
	t := make([][]int, size)
	for p := range t {
		t[p] = make([]int, dim)
		for n := 0; n < dim; n++ {
			t[p][n] = mod(p-center+n, size)
		}
	}
	return t
}

// mod returns a mod n in [0, n), also for negative a.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func (c *conv) rowRange(lo, hi int) {
	dim := c.k.Dim()
	for y := lo; y < hi; y++ {
		ry := c.rows[y]
		for x := 0; x < c.w; x++ {
			cx := c.cols[x]
			base := (y*c.w + x) * c.d
			for ch := 0; ch < c.d; ch++ {
				var sum float64
				for i := 0; i < dim; i++ {
					col := cx[i]
					for j := 0; j < dim; j++ {
						sum += c.src[(ry[j]*c.w+col)*c.d+ch] * c.k.At(i, j)
					}
				}
				c.dst[base+ch] = c.finish(sum)
			}
		}
	}
}

// finish converts an accumulated sum into an output sample.
func (c *conv) finish(sum float64) float64 {
	if r := math.Round(sum); math.Abs(sum-r) <= c.eps {
		sum = r
	}
	if c.round {
		sum = math.RoundToEven(sum)
	} else {
		sum = math.Trunc(sum)
	}
	return pixel.Clip(sum)
}
