// Package espn issues scoreboard requests against ESPN's public site API.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/espn-scores/internal/logging"
)

// Recorder receives one observation per scoreboard fetch.
type Recorder interface {
	RecordFetch(sportPath string, duration time.Duration, err error)
}

// Config controls how the client reaches ESPN. HTTPClient, when set, takes
// precedence over Timeout.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Timeout    time.Duration
	Recorder   Recorder
	Logger     *slog.Logger
}

// Client fetches raw scoreboard payloads. It is safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	recorder   Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		recorder:   cfg.Recorder,
		logger:     cfg.Logger,
		now:        time.Now,
	}
}

// FetchScoreboard GETs {base}/{sportPath}/scoreboard with params and returns the
// response body. The body is guaranteed to be syntactically valid JSON.
func (c *Client) FetchScoreboard(ctx context.Context, sportPath string, params url.Values) ([]byte, error) {
	start := c.now()
	body, err := c.fetch(ctx, sportPath, params)
	duration := c.now().Sub(start)

	if c.recorder != nil {
		c.recorder.RecordFetch(sportPath, duration, err)
	}
	logger := logging.FromContext(ctx, c.logger)
	if err != nil {
		logging.Debug(logger, "espn fetch failed",
			logging.FieldPath, sportPath,
			logging.FieldDurationMS, duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	logging.Debug(logger, "espn fetch complete",
		logging.FieldPath, sportPath,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return body, nil
}

func (c *Client) fetch(ctx context.Context, sportPath string, params url.Values) ([]byte, error) {
	req, err := c.buildRequest(ctx, sportPath, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", ErrUpstream, sportPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
			URL:        req.URL.String(),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrUpstream, sportPath, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: decode %s: response is not valid JSON", ErrUpstream, sportPath)
	}
	return body, nil
}

func (c *Client) buildRequest(ctx context.Context, sportPath string, params url.Values) (*http.Request, error) {
	sportPath = strings.Trim(sportPath, "/")
	if sportPath == "" {
		return nil, fmt.Errorf("espn: empty sport path")
	}
	endpoint := c.baseURL + "/" + sportPath + "/scoreboard"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
