// Package geom provides the 3D transform primitives shared by the spatial
// audio scene: validated position/orientation transforms, world-to-listener
// rotation matrices and bearing computation.
//
// The coordinate system is right-handed with meters as the unit. The default
// orientation looks down -Z with +Y up, so right = forward x up = +X and the
// world-to-listener rotation of the default orientation is the identity.
package geom
