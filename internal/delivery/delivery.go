// Package delivery defines the transport-agnostic serving contract.
package delivery

import "context"

// Delivery is implemented by every transport entry point of the service.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
