package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"dash-backend/internal/cache"
	"dash-backend/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GetStats returns the dashboard headline numbers, served from cache
// when fresh.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	if data, ok := cache.GetCached(ctx, cache.DashboardStatsKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	stats, err := h.Service.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		writeError(w, err)
		return
	}
	cache.SetCached(ctx, cache.DashboardStatsKey, data, cache.StatsTTL)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
