// Package ambisonic provides the ambisonic order enumeration and the
// spherical-harmonic encoder that maps a source bearing to per-channel
// encoding coefficients (ACN channel ordering, SN3D normalization).
package ambisonic
