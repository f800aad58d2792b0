// Package delivery defines the inbound transports started by the application.
package delivery

import "context"

// Delivery is a long-running inbound transport such as the HTTP API.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
