// Package lifecycle holds process-wide timing constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (database ping, migrations, HTTP shutdown).
const DefaultTimeout = 15 * time.Second
