// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homeledger/backend/internal/application/adapter"
)

// HealthController handles health check endpoints.
type HealthController struct {
	store adapter.LedgerStore
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Store     string `json:"store"`
	Saving    bool   `json:"saving"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(store adapter.LedgerStore) *HealthController {
	return &HealthController{store: store}
}

// Check handles GET /health requests. The API stays healthy while
// offline; the store status tells clients whether writes reach the
// backing store.
func (h *HealthController) Check(c *gin.Context) {
	storeStatus := "offline"
	if h.store != nil && h.store.Online() {
		storeStatus = "online"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Store:     storeStatus,
		Saving:    h.store != nil && h.store.Saving(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
