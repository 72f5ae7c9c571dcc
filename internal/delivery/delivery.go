// Package delivery defines the contract every transport entry point fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, Pub/Sub worker) whose
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
