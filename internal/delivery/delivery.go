// Package delivery defines the inbound transports of the service.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
