// Package lifecycle holds shared timing constants for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
