package server

import (
	"time"

	"github.com/preston-bernstein/espn-scores/internal/config"
)

const (
	readTimeout   = 10 * time.Second
	idleTimeout   = 60 * time.Second
	writeHeadroom = 5 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// requestTimeout bounds a request by the upstream timeout so a slow ESPN
// answer turns into a 504 before the write deadline closes the connection.
func requestTimeout(cfg config.Config) time.Duration {
	return cfg.ESPN.Timeout
}

func writeTimeout(cfg config.Config) time.Duration {
	return requestTimeout(cfg) + writeHeadroom
}
