// SPDX-License-Identifier: MIT

package pixel

import "fmt"

// ChannelOrder names the channel layout of a depth-3 buffer. It is ignored for
// grayscale buffers.
type ChannelOrder int

const (
	// RGB stores red, green, blue at channel indices 0, 1, 2.
	RGB ChannelOrder = iota
	// BGR stores blue, green, red at channel indices 0, 1, 2 (OpenCV layout).
	BGR
)

// DefaultOrder is the channel order used when no WithOrder option is given.
const DefaultOrder = RGB

const panicOrderInvalid = "pixel: WithOrder: unknown channel order"

// String implements fmt.Stringer.
func (o ChannelOrder) String() string {
	switch o {
	case RGB:
		return "rgb"
	case BGR:
		return "bgr"
	default:
		return fmt.Sprintf("ChannelOrder(%d)", int(o))
	}
}

// Indices returns the channel indices of red, green and blue for o.
func (o ChannelOrder) Indices() (r, g, b int) {
	if o == BGR {
		return 2, 1, 0
	}
	return 0, 1, 2
}

// ParseOrder maps "rgb"/"bgr" to a ChannelOrder.
func ParseOrder(s string) (ChannelOrder, error) {
	switch s {
	case "rgb", "RGB":
		return RGB, nil
	case "bgr", "BGR":
		return BGR, nil
	}
	return 0, fmt.Errorf("pixel.ParseOrder(%q): %w", s, ErrShape)
}

// Option mutates buffer construction options.
type Option func(*Options)

// Options stores the effective construction configuration.
type Options struct {
	order ChannelOrder
}

// WithOrder sets the channel order of a color buffer.
// Panics on an order other than RGB or BGR (programmer error).
func WithOrder(order ChannelOrder) Option {
	if order != RGB && order != BGR {
		panic(panicOrderInvalid)
	}
	return func(o *Options) { o.order = order }
}

func gatherOptions(opts ...Option) Options {
	o := Options{order: DefaultOrder}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
