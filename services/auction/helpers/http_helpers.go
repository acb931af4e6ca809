package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/internal/auctionerrors"
	"github.com/SudarshanaRao/orchids-dream60website-1-sub004/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrParticipantNotFound):
		return http.StatusNotFound, "participant not found"
	case errors.Is(err, auctionerrors.ErrNoWinners):
		return http.StatusNotFound, "winners not announced yet"
	case errors.Is(err, auctionerrors.ErrAlreadyJoined):
		return http.StatusConflict, "user already joined"
	case errors.Is(err, auctionerrors.ErrAlreadyBid):
		return http.StatusConflict, "bid already placed this round"
	case errors.Is(err, auctionerrors.ErrAlreadyClaimed):
		return http.StatusConflict, "prize already claimed"
	case errors.Is(err, auctionerrors.ErrRoundNotActive):
		return http.StatusConflict, "round is not active"
	case errors.Is(err, auctionerrors.ErrAlreadyEliminated):
		return http.StatusForbidden, "participant eliminated"
	case errors.Is(err, auctionerrors.ErrNotEligible):
		return http.StatusForbidden, "not eligible"
	case errors.Is(err, auctionerrors.ErrWindowExpired):
		return http.StatusGone, "claim window expired"
	case errors.Is(err, auctionerrors.ErrTransient):
		return http.StatusServiceUnavailable, "temporary storage error, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
