package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rtawsif/linkup/backend/internal/pagination"
	"github.com/rtawsif/linkup/backend/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the personalized feed for the current user: own posts plus
// posts of followed users, newest-first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	params := pagination.FromContext(c)
	posts, total, err := h.feedService.FeedFor(c.Request().Context(), currentUserID, params.Offset(), params.Limit())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": posts},
		"meta":    pagination.NewMeta(params, total),
	})
}
