// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"go.yhsif.com/immutable"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvraster/convolve"
	"github.com/katalvlaran/lvraster/geom"
	"github.com/katalvlaran/lvraster/halftone"
	"github.com/katalvlaran/lvraster/kernel"
	"github.com/katalvlaran/lvraster/pixel"
	"github.com/katalvlaran/lvraster/tone"
)

// Operation names that are not kernels.
const (
	Grayscale = "grayscale"
	Halftone  = "halftone"
	Rot90     = "rot90"
	RotM90    = "rotm90"
	Rot180    = "rot180"
	HorFlip   = "hor_flip"
	VertFlip  = "vert_flip"
	Downscale = "downscale"
	Negate    = "negate"

	// Negative is the legacy spelling of Negate.
	Negative = "negative"
)

// Func transforms one buffer into a new one.
type Func func(*pixel.Buffer) (*pixel.Buffer, error)

var fixed = []string{
	Grayscale, Halftone, Rot90, RotM90, Rot180, HorFlip, VertFlip, Downscale, Negate,
}

// nonKernel holds every recognized name that does not select a kernel.
var nonKernel = immutable.SetLiteral(append(slices.Clone(fixed), Negative)...)

// geometric holds the pure index-remapping operations.
var geometric = immutable.SetLiteral(Rot90, RotM90, Rot180, HorFlip, VertFlip, Downscale, Negate, Negative)

// IsKernel reports whether name selects a convolution kernel.
func IsKernel(name string) bool {
	return !nonKernel.Contains(name) && kernel.Has(name)
}

// IsGeometric reports whether name is a geometric transform.
func IsGeometric(name string) bool {
	return geometric.Contains(name)
}

// Names returns every canonical operation name, sorted. Aliases are omitted.
func Names() []string {
	names := append(slices.Clone(fixed), kernel.Names()...)
	slices.Sort(names)
	return names
}

// Lookup resolves name to its transform. Kernel operations are bound to opts;
// other operations ignore them.
func Lookup(name string, opts ...convolve.Option) (Func, error) {
	if IsKernel(name) {
		return func(b *pixel.Buffer) (*pixel.Buffer, error) {
			return convolve.Apply(b, name, opts...)
		}, nil
	}

	switch name {
	case Grayscale:
		return tone.Grayscale, nil
	case Halftone:
		return halftone.Halftone, nil
	case Rot90:
		return geom.Rot90, nil
	case RotM90:
		return geom.RotM90, nil
	case Rot180:
		return geom.Rot180, nil
	case HorFlip:
		return geom.HorFlip, nil
	case VertFlip:
		return geom.VertFlip, nil
	case Downscale:
		return geom.Downscale, nil
	case Negate, Negative:
		return geom.Negate, nil
	}

	return nil, fmt.Errorf("ops.Lookup(%q): %w", name, ErrUnknownOperation)
}

// Apply runs the operation called name on b.
func Apply(name string, b *pixel.Buffer, opts ...convolve.Option) (*pixel.Buffer, error) {
	f, err := Lookup(name, opts...)
	if err != nil {
		return nil, err
	}
	return f(b)
}

// Pipeline runs the named operations in order, feeding each result into the
// next. It stops at the first failure and returns no partial result.
func Pipeline(b *pixel.Buffer, names []string, opts ...convolve.Option) (*pixel.Buffer, error) {
	fs := make([]Func, len(names))
	for i, name := range names {
		f, err := Lookup(name, opts...)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}

	if len(fs) == 0 {
		if err := pixel.Validate(b); err != nil {
			return nil, fmt.Errorf("ops.Pipeline: %w", err)
		}
		return b.Clone(), nil
	}

	cur := b
	for i, f := range fs {
		next, err := f(cur)
		if err != nil {
			return nil, fmt.Errorf("ops.Pipeline: step %d (%s): %w", i, names[i], err)
		}
		cur = next
	}
	return cur, nil
}
