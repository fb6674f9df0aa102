// Package delivery defines the contract every transport entrypoint
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is one serving surface of the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
