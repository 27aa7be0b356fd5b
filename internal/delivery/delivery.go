// Package delivery defines the contract every inbound adapter (HTTP API,
// push worker) fulfils so the application can run them uniformly.
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the
// delivery stops; cancelling ctx requests a graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
