package model

import "time"

// Shared defaults used by the library packages and the CLI.
const (
	DefaultStartRoute    = "Login"
	DefaultToastDuration = 2 * time.Second
	DefaultLongToast     = 4 * time.Second
)
