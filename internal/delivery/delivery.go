// Package delivery holds the long-running entry points started by the agent.
package delivery

import "context"

// Delivery is a server or loop started at boot. Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
