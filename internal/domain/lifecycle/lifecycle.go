// Package lifecycle holds timing constants shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, HTTP shutdown, session drain).
const DefaultTimeout = 10 * time.Second
