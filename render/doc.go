// Package render specifies the boundary to the external rendering backend:
// the Backend interface the scene pushes rotation matrices, encoding
// coefficients and room responses into, and the deferred run-once graph
// connection that bridges synchronous scene control with the backend's
// asynchronous resource initialization.
package render
