package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"club-lineup-service/internal/app/lineups"
	appsquads "club-lineup-service/internal/app/squads"
	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/formation"
	"club-lineup-service/internal/poller"
	"club-lineup-service/internal/tactics"
)

// Handler wires HTTP routes to the squad and lineup services.
type Handler struct {
	squads   *appsquads.Service
	lineups  *lineups.Service
	sessions *tactics.Manager
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(squadSvc *appsquads.Service, lineupSvc *lineups.Service, sessions *tactics.Manager, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		squads:   squadSvc,
		lineups:  lineupSvc,
		sessions: sessions,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/formations":
		h.Formations(w, r)
	case r.URL.Path == "/squads":
		h.Squads(w, r)
	case strings.HasPrefix(r.URL.Path, "/squads/"):
		h.SquadSubtree(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Formations lists the registered formation identifiers.
func (h *Handler) Formations(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"default":    formation.DefaultFormation,
		"formations": formation.Known(),
	}, h.logger)
}

// Squads returns the current roster snapshots.
func (h *Handler) Squads(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, squads.ListResponse{Squads: h.squads.Squads()}, h.logger)
}

// SquadSubtree dispatches /squads/{id} and its lineup views.
func (h *Handler) SquadSubtree(w nethttp.ResponseWriter, r *nethttp.Request) {
	id, rest, ok := splitSquadPath(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid squad id", h.logger)
		return
	}

	switch rest {
	case "":
		h.squadByID(w, r, id)
	case "lineup":
		h.board(w, r, id)
	case "prematch":
		h.preMatch(w, r, id)
	case "preview":
		h.preview(w, r, id)
	case "opponent":
		h.opponent(w, r, id)
	case "tactics", "tactics/formation", "tactics/placements":
		h.tactics(w, r, id, rest)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) squadByID(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	squad, ok := h.squads.SquadByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "squad not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, squad, h.logger)
}

func (h *Handler) board(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	board, err := h.lineups.Board(id, r.URL.Query().Get("formation"))
	if err != nil {
		h.writeLineupError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, board, h.logger)
}

func (h *Handler) preMatch(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	pm, err := h.lineups.PreMatch(id)
	if err != nil {
		h.writeLineupError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, pm, h.logger)
}

func (h *Handler) preview(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	pv, err := h.lineups.Preview(id, r.URL.Query().Get("formation"))
	if err != nil {
		h.writeLineupError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, pv, h.logger)
}

func (h *Handler) opponent(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	op, err := h.lineups.Opponent(id)
	if err != nil {
		h.writeLineupError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, op, h.logger)
}

func (h *Handler) writeLineupError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if errors.Is(err, lineups.ErrSquadNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "squad not found", h.logger)
		return
	}
	writeError(w, r, nethttp.StatusInternalServerError, "lineup computation failed", h.logger)
}

// splitSquadPath extracts the squad id and the remaining subpath from
// /squads/{id}[/rest]. IDs with separators or whitespace are rejected.
func splitSquadPath(path string) (id, rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/squads/")
	if trimmed == "" || trimmed == path {
		return "", "", false
	}
	parts := strings.SplitN(trimmed, "/", 2)
	raw := parts[0]
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", "", false
	}
	if len(parts) == 2 {
		rest = strings.TrimSuffix(parts[1], "/")
	}
	return id, rest, true
}

func requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, method string, logger *slog.Logger) bool {
	if r.Method != method {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}
