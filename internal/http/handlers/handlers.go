package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/espn-scores/internal/app/scores"
	"github.com/preston-bernstein/espn-scores/internal/logging"
	"github.com/preston-bernstein/espn-scores/pkg/conferences"
	"github.com/preston-bernstein/espn-scores/pkg/query"
	"github.com/preston-bernstein/espn-scores/pkg/scoreboard"
)

// Query string keys accepted by the scoreboard routes.
const (
	paramWeek       = "week"
	paramSeasonType = "seasontype"
	paramDate       = "date"
	paramStatus     = "status"
	paramGroups     = "groups"
	paramConference = "conference"
	paramLimit      = "limit"
)

// Handler wires HTTP routes to the scores service.
type Handler struct {
	svc    *scores.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *scores.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Sports lists the supported leagues and how each is scheduled.
func (h *Handler) Sports(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{"sports": h.svc.Sports()}, h.logger)
}

// Scoreboard serves GET /v1/{sport}/scoreboard.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	sport, ok := h.sport(w, r)
	if !ok {
		return
	}
	req, err := parseRequest(sport, r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}

	result, err := h.svc.Scoreboard(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logger.Info("served scoreboard",
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, len(result.Games)),
	)
	writeJSON(w, nethttp.StatusOK, result, logger)
}

// Games serves GET /v1/{sport}/games/{status}: the current week's or today's
// games in one state.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	sport, ok := h.sport(w, r)
	if !ok {
		return
	}
	status, ok := statusAliases[strings.ToLower(chi.URLParam(r, "status"))]
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "unknown game status; want final, live or upcoming", logger)
		return
	}
	ref := conferenceRef(r.URL.Query())

	result, err := h.svc.Games(r.Context(), sport, status, ref)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logger.Info("served games",
		slog.String(logging.FieldSport, string(sport)),
		slog.String(logging.FieldStatus, string(status)),
		slog.Int(logging.FieldCount, len(result.Games)),
	)
	writeJSON(w, nethttp.StatusOK, result, logger)
}

// Conferences serves GET /v1/{sport}/conferences.
func (h *Handler) Conferences(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	sport, ok := h.sport(w, r)
	if !ok {
		return
	}
	list, err := h.svc.Conferences(sport)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"sport":       sport,
		"conferences": list,
	}, logger)
}

// League serves GET /v1/{sport}/league.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	sport, ok := h.sport(w, r)
	if !ok {
		return
	}
	info, err := h.svc.LeagueInfo(r.Context(), sport)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, info, logger)
}

// NotFound is the JSON fallback for unmatched routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed is the JSON fallback for routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}

func (h *Handler) sport(w nethttp.ResponseWriter, r *nethttp.Request) (scoreboard.Sport, bool) {
	sport, err := scoreboard.ParseSport(chi.URLParam(r, "sport"))
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), loggerFromContext(r, h.logger))
		return "", false
	}
	return sport, true
}

var statusAliases = map[string]scoreboard.Status{
	"final":       scoreboard.StatusFinal,
	"live":        scoreboard.StatusInProgress,
	"in_progress": scoreboard.StatusInProgress,
	"upcoming":    scoreboard.StatusScheduled,
	"scheduled":   scoreboard.StatusScheduled,
}

var seasonTypeAliases = map[string]scoreboard.SeasonType{
	"pre":        scoreboard.SeasonPre,
	"preseason":  scoreboard.SeasonPre,
	"regular":    scoreboard.SeasonRegular,
	"post":       scoreboard.SeasonPost,
	"postseason": scoreboard.SeasonPost,
	"playoffs":   scoreboard.SeasonPost,
}

func parseRequest(sport scoreboard.Sport, q url.Values) (scores.Request, error) {
	req := scores.Request{
		Sport:      sport,
		Date:       strings.TrimSpace(q.Get(paramDate)),
		Conference: conferenceRef(q),
	}

	var err error
	if req.Week, err = intParam(q, paramWeek); err != nil {
		return scores.Request{}, err
	}
	if req.Limit, err = intParam(q, paramLimit); err != nil {
		return scores.Request{}, err
	}
	if req.SeasonType, err = seasonTypeParam(q.Get(paramSeasonType)); err != nil {
		return scores.Request{}, err
	}
	if raw := q.Get(paramStatus); raw != "" {
		status, ok := statusAliases[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			return scores.Request{}, &query.InvalidArgumentError{Field: paramStatus, Value: raw, Reason: "want final, live or upcoming"}
		}
		req.Status = status
	}
	return req, nil
}

// conferenceRef reads groups, falling back to the friendlier conference key.
func conferenceRef(q url.Values) conferences.Ref {
	raw := q.Get(paramGroups)
	if raw == "" {
		raw = q.Get(paramConference)
	}
	if strings.TrimSpace(raw) == "" {
		return conferences.Ref{}
	}
	return conferences.ParseRef(raw)
}

func intParam(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &query.InvalidArgumentError{Field: key, Value: raw, Reason: "must be an integer"}
	}
	return n, nil
}

func seasonTypeParam(raw string) (scoreboard.SeasonType, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return 0, nil
	}
	if st, ok := seasonTypeAliases[raw]; ok {
		return st, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !scoreboard.SeasonType(n).Valid() {
		return 0, &query.InvalidArgumentError{Field: paramSeasonType, Value: raw, Reason: "want 1, 2, 3, pre, regular or post"}
	}
	return scoreboard.SeasonType(n), nil
}
