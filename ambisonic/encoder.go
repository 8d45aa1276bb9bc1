package ambisonic

import "math"

// Encoder computes ACN-ordered, SN3D-normalized spherical-harmonic encoding
// coefficients for a point source at a given bearing. The coefficient buffer
// is reused across calls; callers that retain coefficients must copy them.
type Encoder struct {
	order  Order
	coeffs []float64
}

// NewEncoder creates an encoder for the given ambisonic order.
func NewEncoder(order Order) (*Encoder, error) {
	if !order.Valid() {
		return nil, ErrInvalidOrder
	}

	return &Encoder{
		order:  order,
		coeffs: make([]float64, order.ChannelCount()),
	}, nil
}

// Order returns the configured ambisonic order.
func (e *Encoder) Order() Order { return e.order }

// ChannelCount returns the number of encoded channels.
func (e *Encoder) ChannelCount() int { return len(e.coeffs) }

// Encode recomputes the encoding coefficients for a bearing given as
// azimuth (radians from the forward axis, positive left) and elevation
// (radians, positive up), and returns the internal coefficient slice in ACN
// channel order.
func (e *Encoder) Encode(azimuth, elevation float64) []float64 {
	sinAz, cosAz := math.Sincos(azimuth)
	sinEl, cosEl := math.Sincos(elevation)
	sin2Az, cos2Az := math.Sincos(2 * azimuth)

	c := e.coeffs

	// Order 0-1: W, Y, Z, X.
	c[0] = 1
	c[1] = sinAz * cosEl
	c[2] = sinEl
	c[3] = cosAz * cosEl

	if e.order < OrderSecond {
		return c
	}

	sin2El := 2 * sinEl * cosEl
	cosEl2 := cosEl * cosEl
	sinEl2 := sinEl * sinEl
	halfSqrt3 := math.Sqrt(3) / 2

	// Order 2: V, T, R, S, U.
	c[4] = halfSqrt3 * sin2Az * cosEl2
	c[5] = halfSqrt3 * sinAz * sin2El
	c[6] = 0.5 * (3*sinEl2 - 1)
	c[7] = halfSqrt3 * cosAz * sin2El
	c[8] = halfSqrt3 * cos2Az * cosEl2

	if e.order < OrderThird {
		return c
	}

	sin3Az, cos3Az := math.Sincos(3 * azimuth)
	cosEl3 := cosEl2 * cosEl

	// Order 3: Q, O, M, K, L, N, P.
	c[9] = math.Sqrt(5.0/8.0) * sin3Az * cosEl3
	c[10] = math.Sqrt(15) / 2 * sin2Az * sinEl * cosEl2
	c[11] = math.Sqrt(3.0/8.0) * sinAz * cosEl * (5*sinEl2 - 1)
	c[12] = 0.5 * sinEl * (5*sinEl2 - 3)
	c[13] = math.Sqrt(3.0/8.0) * cosAz * cosEl * (5*sinEl2 - 1)
	c[14] = math.Sqrt(15) / 2 * cos2Az * sinEl * cosEl2
	c[15] = math.Sqrt(5.0/8.0) * cos3Az * cosEl3

	return c
}
