package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rtawsif/linkup/backend/internal/models"
)

// getUserIDFromContext extracts the authenticated user ID set by the JWT
// middleware, or 0 when unauthenticated
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// statusForCode maps error codes to HTTP statuses. The conflict class maps
// to 409, distinguishable from 404 and from validation failures.
func statusForCode(code string) int {
	switch code {
	case models.CodeValidation, models.CodeSelfReference:
		return http.StatusBadRequest
	case models.CodeAuthentication:
		return http.StatusUnauthorized
	case models.CodeAuthorization:
		return http.StatusForbidden
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeAlreadyExists, models.CodeAlreadyLiked,
		models.CodeNotFollowing, models.CodeNotLiked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// httpError converts a service error into an echo HTTPError
func httpError(err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(statusForCode(appErr.Code), echo.Map{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
