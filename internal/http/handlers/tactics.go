package handlers

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"club-lineup-service/internal/lineup"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/tactics"
)

type setFormationRequest struct {
	Formation string `json:"formation"`
}

// tactics dispatches the session-editing endpoints:
//
//	PUT    /squads/{id}/tactics/formation   switch the board's formation
//	POST   /squads/{id}/tactics/placements  record one drag/drop placement
//	GET    /squads/{id}/tactics             read the session
//	DELETE /squads/{id}/tactics             clear the session
func (h *Handler) tactics(w nethttp.ResponseWriter, r *nethttp.Request, id, rest string) {
	if h.sessions == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "tactics sessions not configured", h.logger)
		return
	}
	if _, ok := h.squads.SquadByID(id); !ok {
		writeError(w, r, nethttp.StatusNotFound, "squad not found", h.logger)
		return
	}

	switch {
	case rest == "tactics" && r.Method == nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, h.sessions.Session(id), h.logger)
	case rest == "tactics" && r.Method == nethttp.MethodDelete:
		h.clearTactics(w, r, id)
	case rest == "tactics/formation" && r.Method == nethttp.MethodPut:
		h.setFormation(w, r, id)
	case rest == "tactics/placements" && r.Method == nethttp.MethodPost:
		h.addPlacement(w, r, id)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) setFormation(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	var req setFormationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Formation == "" {
		writeError(w, r, nethttp.StatusBadRequest, "formation required", h.logger)
		return
	}

	if err := h.sessions.SetFormation(id, req.Formation); err != nil {
		if errors.Is(err, tactics.ErrUnknownFormation) {
			writeError(w, r, nethttp.StatusBadRequest, "unknown formation", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to update session", h.logger)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "board formation set",
		logging.FieldSquad, id,
		logging.FieldFormation, req.Formation,
	)
	writeJSON(w, nethttp.StatusOK, h.sessions.Session(id), h.logger)
}

func (h *Handler) addPlacement(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	var placement lineup.Placement
	if err := json.NewDecoder(r.Body).Decode(&placement); err != nil || placement.PlayerID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "placement required", h.logger)
		return
	}

	if err := h.sessions.Place(id, placement); err != nil {
		switch {
		case errors.Is(err, tactics.ErrUnknownLine), errors.Is(err, tactics.ErrSlotOutOfRange):
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		default:
			writeError(w, r, nethttp.StatusInternalServerError, "failed to update session", h.logger)
		}
		return
	}

	writeJSON(w, nethttp.StatusOK, h.sessions.Session(id), h.logger)
}

func (h *Handler) clearTactics(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if err := h.sessions.Clear(id); err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to clear session", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "cleared"}, h.logger)
}
