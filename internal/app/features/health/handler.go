package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	API *imsapi.Client
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the backend client and logger.
func NewHandler(api *imsapi.Client, logger *zap.Logger) *Handler {
	return &Handler{API: api, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "backend":"reachable" }
//
// On backend failure: 503 and
//
//	{ "status":"error", "backend":"unreachable", "message":"…", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		Backend: "reachable",
	}

	if err := h.API.Ping(ctx); err != nil {
		h.Log.Error("health-check: backend ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Backend = "unreachable"
		resp.Message = "Inventory service unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
