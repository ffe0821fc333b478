// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the fx invoke in each cmd.
type Delivery interface {
	Serve(ctx context.Context) error
}
