// Package delivery defines the contract every transport surface fulfils.
package delivery

import "context"

// Delivery is a running transport surface (today: the HTTP API).
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
