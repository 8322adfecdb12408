// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup checks and shutdown drains.
const DefaultTimeout = 10 * time.Second
