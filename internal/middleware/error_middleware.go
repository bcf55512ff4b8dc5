package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aimldept/portal/internal/app/models/dto"
	"github.com/aimldept/portal/internal/pkg/apperrors"
	"github.com/aimldept/portal/internal/pkg/logger"
)

// HandleAPIError maps a taxonomy error to its single HTTP status and a short
// client-safe message. Anything outside the taxonomy is treated as an
// internal failure and logged without leaking detail.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: apperrors.Message(err, "Invalid request"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Message: apperrors.Message(err, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Message: apperrors.Message(err, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Message: apperrors.Message(err, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Message: apperrors.Message(err, "Conflict"),
		})
	case errors.Is(err, apperrors.ErrPersistence):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Something went wrong!",
		})
	default:
		logger.Error().Err(err).Msg("Unhandled error in request handler")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Message: "Something went wrong!",
		})
	}
}
