package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/pharmatrust/custody/internal/api/shared/errors"
	"github.com/pharmatrust/custody/internal/domain"
	"github.com/pharmatrust/custody/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondServiceError maps a service-layer error onto the API error surface
func respondServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(validationErr.Reason))
		return
	}

	var authErr *domain.AuthorizationError
	if errors.As(err, &authErr) {
		c.JSON(http.StatusForbidden, apierrors.NewForbiddenError("Not authorized", authErr.Reason))
		return
	}

	var resolutionErr *domain.ResolutionError
	if errors.As(err, &resolutionErr) {
		c.JSON(http.StatusConflict, apierrors.NewResolutionError(resolutionErr.Error()))
		return
	}

	var ledgerErr *domain.LedgerCallError
	if errors.As(err, &ledgerErr) {
		logger.Error(err)
		c.JSON(http.StatusBadGateway, apierrors.NewLedgerError("On-chain call failed", ledgerErr.Op))
		return
	}

	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		respondNotFound(c, "Token not found")
	case errors.Is(err, domain.ErrIntentNotFound):
		respondNotFound(c, "Transfer intent not found")
	case errors.Is(err, domain.ErrProofNotFound):
		respondNotFound(c, "Receipt proof not found")
	case errors.Is(err, domain.ErrUserNotFound):
		respondNotFound(c, "User not found")
	case errors.Is(err, domain.ErrRegistrationNotFound):
		respondNotFound(c, "Registration request not found")
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
