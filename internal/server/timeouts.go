package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second

	// loadTimeout bounds the startup dataset load; the stats files are
	// large, but a load that takes longer than this is stuck, not slow.
	loadTimeout = 5 * time.Minute
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
