package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rtawsif/linkup/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.LikePost)
	g.DELETE("/posts/:post_id/like", h.UnlikePost)
	g.GET("/posts/:post_id/likes/count", h.GetLikesCount)
	g.GET("/posts/:post_id/likes/status", h.GetLikeStatus)
}

// LikePost handles liking a post
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	like, err := h.likeService.Like(c.Request().Context(), currentUserID, uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, like)
}

// UnlikePost handles unliking a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	if err := h.likeService.Unlike(c.Request().Context(), currentUserID, uint(postID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetLikesCount retrieves the total number of likes for a specific post
func (h *LikeHandler) GetLikesCount(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	count, err := h.likeService.LikesCount(c.Request().Context(), uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetLikeStatus checks if the authenticated user has liked a specific post
func (h *LikeHandler) GetLikeStatus(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	hasLiked, err := h.likeService.IsLikedBy(c.Request().Context(), currentUserID, uint(postID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "user_id": currentUserID, "has_liked": hasLiked})
}
