package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// defaultShutdownTimeout applies when config leaves ShutdownTimeout unset.
// It remains a var for tests to override.
var defaultShutdownTimeout = 10 * time.Second
