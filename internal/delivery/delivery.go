// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a long-running transport serving the storefront.
type Delivery interface {
	// Serve blocks, serving requests until the process stops.
	Serve(ctx context.Context) error
}
