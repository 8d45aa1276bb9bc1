// Package gain computes per-source scalar gains: distance attenuation
// (rolloff curves over a clamped distance range) and emitter directivity
// (angle-dependent patterns).
package gain
