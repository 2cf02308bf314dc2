package http

import (
	nethttp "net/http"

	"club-lineup-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/formations", handler.Formations)
	mux.HandleFunc("/squads", handler.Squads)
	mux.HandleFunc("/squads/", handler.SquadSubtree)
	return mux
}
