package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/espn-scores/internal/http/middleware"
	"github.com/preston-bernstein/espn-scores/internal/http/requestutil"
	"github.com/preston-bernstein/espn-scores/internal/logging"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/espn"
	"github.com/preston-bernstein/espn-scores/pkg/normalize"
	"github.com/preston-bernstein/espn-scores/pkg/query"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a scores service error onto an HTTP status.
// Caller mistakes keep their message; upstream and internal failures do not.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusBadGateway:
		msg = "upstream scoreboard unavailable"
		if apiErr, ok := espn.AsAPIError(err); ok {
			logging.Warn(logger, "upstream returned error status", slog.Int(logging.FieldStatusCode, apiErr.StatusCode), slog.String(logging.FieldURL, apiErr.URL))
		} else {
			logging.Warn(logger, "upstream fetch failed", "error", err)
		}
	case http.StatusGatewayTimeout:
		msg = "upstream scoreboard timed out"
		logging.Warn(logger, "upstream fetch timed out", "error", err)
	case http.StatusInternalServerError:
		msg = "internal error"
		logging.Error(logger, "scoreboard request failed", err)
	}
	writeError(w, r, status, msg, logger)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, query.ErrInvalidArgument),
		errors.Is(err, conferences.ErrUnknownConference),
		errors.Is(err, conferences.ErrConferencesUnsupported):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, espn.ErrUpstream), errors.Is(err, normalize.ErrMalformedPayload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if fallback == nil {
		fallback = slog.Default()
	}
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
