package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"khabar/domain"
	appErrors "khabar/utils/errors"
	"khabar/utils/logger"
)

// handleError maps a usecase failure onto an HTTP response. Domain sentinels
// keep the wording the frontend has always shown; structured errors carry
// their own status; anything else collapses to 500 with the detail kept in
// the logs.
func handleError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Article not found"})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, domain.ErrAlreadySubscribed):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "This email is already subscribed."})
	case errors.Is(err, domain.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email already registered"})
	}

	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			appErrors.LogError(logger.Logger, err, operation)
			return c.JSON(status, ErrorResponse{Error: "Server error"})
		}
		return c.JSON(status, ErrorResponse{Error: appErr.Message})
	}

	appErrors.LogError(logger.Logger, err, operation)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error"})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
