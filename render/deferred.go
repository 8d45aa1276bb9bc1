package render

import (
	"context"
	"errors"
	"sync"
)

// ErrConnectionCancelled reports that the owning scene was torn down before
// the backend finished initializing.
var ErrConnectionCancelled = errors.New("render: connection cancelled before backend became ready")

// Connection tracks the deferred wiring of a scene to a backend. The connect
// continuation runs exactly once, after the backend reports readiness, and
// must read live state at that point rather than values snapshotted at
// construction time.
type Connection struct {
	mu          sync.Mutex
	established bool
	err         error
	done        chan struct{}
}

// Defer schedules connect to run once the backend becomes ready. If ctx is
// cancelled first, the connection is abandoned and Err reports
// ErrConnectionCancelled; a backend whose initialization failed propagates
// its error instead.
func Defer(ctx context.Context, backend Backend, connect func() error) *Connection {
	c := &Connection{done: make(chan struct{})}

	go func() {
		defer close(c.done)

		select {
		case <-ctx.Done():
			c.finish(false, ErrConnectionCancelled)
		case <-backend.Ready():
			if err := backend.Err(); err != nil {
				c.finish(false, err)
				return
			}

			if err := connect(); err != nil {
				c.finish(false, err)
				return
			}

			c.finish(true, nil)
		}
	}()

	return c
}

// Done is closed once the connection attempt has finished, successfully or
// not.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

// Err returns the connection failure, if any. Only meaningful once Done is
// closed.
func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

// Established reports whether the graph has been wired. Parameter pushes
// before this point update local state only.
func (c *Connection) Established() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.established
}

func (c *Connection) finish(established bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.established = established
	c.err = err
}
