// Package lifecycle holds shared timing constants for component startup and
// shutdown, so every server and connection pool drains within the same window.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of any single component.
const DefaultTimeout = 10 * time.Second
