// Package delivery defines the inbound transport contract shared by all
// server implementations.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application
// entrypoint.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
