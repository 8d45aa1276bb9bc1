// Package room models the acoustic response of an axis-aligned box room:
// six first-order wall reflections (delayed, attenuated copies of the direct
// sound, derived from listener-to-wall distances and the speed of sound) and
// a statistical late tail whose per-band decay follows a Sabine estimate
// from room volume and wall absorption.
//
// Geometry or material changes trigger a total recompute of both subsystems;
// listener moves recompute only the early-reflection geometry.
package room
