package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/espn-scores/pkg/sports"
)

// providerName returns a lower-cased provider name, deriving from the fetcher type when not configured.
func providerName(raw string, fetcher sports.Fetcher) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if fetcher != nil {
		return strings.ToLower(fmt.Sprintf("%T", fetcher))
	}
	return "provider"
}
