// Package delivery defines the entry-point contract shared by all transports.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP, worker, ...).
// Implementations block in Serve until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
