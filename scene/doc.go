// Package scene is the top-level container of the spatial audio model: a
// room, a listener and a collection of sources, with the scene as the single
// entry point for mutation. State changes propagate top-down — listener and
// room first, then every source in creation order — and derived parameters
// are pushed into the rendering backend, deferred while the backend's
// asynchronous initialization is still pending.
package scene
