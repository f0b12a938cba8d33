package sync

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moneta-app/banksync/internal/connection"
	"github.com/moneta-app/banksync/internal/http/auth"
	"github.com/moneta-app/banksync/internal/scraper"
	"github.com/moneta-app/banksync/internal/syncer"
)

type Handler struct {
	svc         *syncer.Service
	connections connection.Repository
}

func NewHandler(svc *syncer.Service, connections connection.Repository) *Handler {
	return &Handler{svc: svc, connections: connections}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.syncOne)
	r.With(auth.RequireAdmin).Post("/all", h.syncAll)
}

type syncRequest struct {
	Provider    scraper.Provider    `json:"provider"`
	Credentials scraper.Credentials `json:"credentials"`
}

func (h *Handler) syncOne(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := auth.TenantID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Provider == "" {
		http.Error(w, "provider is required", http.StatusBadRequest)
		return
	}

	result, err := h.svc.SyncOne(r.Context(), tenantID, req.Provider, req.Credentials)
	if err != nil {
		var scrapeErr *syncer.ScrapeError

		switch {
		case errors.Is(err, scraper.ErrUnsupportedProvider):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &scrapeErr):
			http.Error(w, scrapeErr.Error(), http.StatusBadGateway)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type syncAllResponse struct {
	Outcomes []syncer.Outcome `json:"outcomes"`
}

func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	conns, err := h.connections.ListAutoSync(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outcomes := h.svc.SyncAll(r.Context(), conns)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(syncAllResponse{Outcomes: outcomes}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
