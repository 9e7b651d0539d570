// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook may take,
// for example pinging the database on start or draining a server on stop.
const DefaultTimeout = 10 * time.Second
