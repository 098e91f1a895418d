// Package lifecycle holds shared start/stop timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of managed
// resources.
const DefaultTimeout = 15 * time.Second
