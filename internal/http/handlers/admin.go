package handlers

import (
	"log/slog"
	"net/http"

	appsquads "club-lineup-service/internal/app/squads"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/providers"
)

// AdminHandler exposes admin-only endpoints (e.g., forced roster refresh).
type AdminHandler struct {
	squads   *appsquads.Service
	provider providers.SquadProvider
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(squadSvc *appsquads.Service, provider providers.SquadProvider, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		squads:   squadSvc,
		provider: provider,
		token:    token,
		logger:   logger,
	}
}

// RefreshSquads fetches a fresh roster snapshot from the provider and
// replaces the store contents. Guarded by ADMIN_TOKEN; 401 when missing or
// invalid.
func (h *AdminHandler) RefreshSquads(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", slog.String("path", r.URL.Path))
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.squads == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	items, err := h.provider.FetchSquads(r.Context())
	if err != nil {
		logging.Warn(logger, "admin refresh fetch failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to fetch squads", logger)
		return
	}
	if err := h.squads.ReplaceSquads(items); err != nil {
		logging.Warn(logger, "admin refresh store failed", slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "failed to store squads", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"squads": len(items),
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin roster refresh complete", logging.FieldCount, len(items))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
