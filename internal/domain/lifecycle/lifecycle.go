// Package lifecycle defines shared lifecycle constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (server drain, DB close).
const DefaultTimeout = 10 * time.Second
