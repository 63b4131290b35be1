package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/palemoky/name-chemi/internal/recent"
)

// RecentLister reads and clears the recent search history.
type RecentLister interface {
	List(ctx context.Context) []recent.Search
	Clear(ctx context.Context)
}

// RecentHandler handles recent search history requests
type RecentHandler struct {
	store RecentLister
}

// NewRecentHandler creates a new recent search handler
func NewRecentHandler(store RecentLister) *RecentHandler {
	return &RecentHandler{store: store}
}

// ListRecent returns the most recent searches, newest first
func (h *RecentHandler) ListRecent(c *gin.Context) {
	respondOK(c, h.store.List(c.Request.Context()))
}

// ClearRecent forgets all recent searches
func (h *RecentHandler) ClearRecent(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}
