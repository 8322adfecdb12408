// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// container and shut down through its lifecycle hooks.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
