// Package lifecycle holds shared limits for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup pings.
const DefaultTimeout = 10 * time.Second
