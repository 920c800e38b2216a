package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/provider"
)

// SyncHandler lets the host environment raise the "connectivity
// restored" event explicitly: a POST triggers one reconciliation pass.
type SyncHandler struct {
	runner *provider.SyncRunner
	logger *logrus.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(runner *provider.SyncRunner, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		runner: runner,
		logger: logger,
	}
}

// ServeHTTP handles the sync trigger endpoint
func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	err := h.runner.Run(r.Context())
	switch {
	case errors.Is(err, provider.ErrSyncInFlight):
		http.Error(w, "Sync already in flight", http.StatusConflict)
		return
	case errors.Is(err, provider.ErrOffline):
		http.Error(w, "Offline", http.StatusServiceUnavailable)
		return
	case err != nil:
		h.logger.WithError(err).Error("Sync failed")
		http.Error(w, "Sync failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "synced"})
}
