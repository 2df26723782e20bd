// Package delivery holds the long running entry points started by the agent.
package delivery

import "context"

// Delivery is started in its own goroutine and blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
