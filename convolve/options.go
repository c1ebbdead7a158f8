// SPDX-License-Identifier: MIT

package convolve

import "math"

const (
	// DefaultWorkers runs the row loop on the calling goroutine.
	DefaultWorkers = 1

	// DefaultEpsilon is the snap tolerance applied before integer conversion.
	DefaultEpsilon = 1e-9
)

const (
	panicWorkersInvalid = "convolve: WithWorkers: n must be >= 1"
	panicEpsilonInvalid = "convolve: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates convolution options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int
	eps     float64
}

// WithWorkers sets the number of goroutines sharing the row loop.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithEpsilon sets the integer snap tolerance. Zero disables snapping.
// Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
