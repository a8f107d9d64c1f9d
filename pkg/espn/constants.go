package espn

import "time"

const (
	// DefaultBaseURL is the public site API root shared by every league.
	DefaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	DefaultUserAgent   = "espn-scores/1.0 (+https://github.com/preston-bernstein/espn-scores)"
	defaultHTTPTimeout = 30 * time.Second
	maxErrorBody       = 512
	maxResponseBody    = 16 << 20
)
