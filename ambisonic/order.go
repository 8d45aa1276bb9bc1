package ambisonic

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder reports an ambisonic order outside the supported range.
var ErrInvalidOrder = errors.New("ambisonic: order must be 1, 2 or 3")

// Order is the degree of spherical-harmonic decomposition of the sound
// field. Channel count grows as (order+1)^2.
type Order int

const (
	// OrderFirst is first-order ambisonics (FOA), 4 channels.
	OrderFirst Order = 1
	// OrderSecond is second-order ambisonics, 9 channels.
	OrderSecond Order = 2
	// OrderThird is third-order ambisonics (TOA), 16 channels.
	OrderThird Order = 3
)

// ParseOrder validates an integer ambisonic order. Unsupported orders fail
// rather than silently falling back to an empty configuration.
func ParseOrder(n int) (Order, error) {
	o := Order(n)
	if !o.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrder, n)
	}

	return o, nil
}

// Valid reports whether the order is within the supported range.
func (o Order) Valid() bool {
	return o >= OrderFirst && o <= OrderThird
}

// ChannelCount returns the number of ambisonic channels, (order+1)^2.
func (o Order) ChannelCount() int {
	n := int(o) + 1
	return n * n
}

// String returns a short name for the order.
func (o Order) String() string {
	switch o {
	case OrderFirst:
		return "FOA"
	case OrderSecond:
		return "SOA"
	case OrderThird:
		return "TOA"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}
