package helpers

import (
	"errors"
	"net/http"

	"live-auction/internal/auctionerrors"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error kinds exposed to clients
const (
	KindNotFound            = "NotFound"
	KindUnauthenticated     = "Unauthenticated"
	KindNotOwner            = "NotOwner"
	KindOwnerCannotBid      = "OwnerCannotBid"
	KindItemNotActive       = "ItemNotActive"
	KindItemAlreadySold     = "ItemAlreadySold"
	KindAuctionEnded        = "AuctionEnded"
	KindBiddingWindowClosed = "BiddingWindowClosed"
	KindBidTooLow           = "BidTooLow"
	KindInsufficientFunds   = "InsufficientFunds"
	KindBidRaceExhausted    = "BidRaceExhausted"
	KindActiveItemConflict  = "ActiveItemConflict"
	KindInvalidDuration     = "InvalidDuration"
	KindEmptyMessage        = "EmptyMessage"
	KindResetFailed         = "ResetFailed"
	KindInvalidRequest      = "InvalidRequest"
	KindInternal            = "Internal"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, KindInvalidRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// RequireActor reads the authenticated actor id set by the identity
// middleware. Mutating calls without one are rejected as Unauthenticated.
func RequireActor(c *gin.Context, handlerName string) (string, bool) {
	actorID := c.GetString("actor_id")
	if actorID == "" {
		utils.JSONError(c, http.StatusUnauthorized, KindUnauthenticated, "missing authenticated user id")
		utils.Warn(handlerName+": unauthenticated request", map[string]any{"path": c.Request.URL.Path})
		return "", false
	}
	return actorID, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status, stable kind and message
func MapErrorToHTTP(err error) (int, string, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, KindNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, KindNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, KindUnauthenticated, "missing authenticated user id"
	case errors.Is(err, auctionerrors.ErrNotOwner):
		return http.StatusForbidden, KindNotOwner, "only the auction owner may do this"
	case errors.Is(err, auctionerrors.ErrOwnerCannotBid):
		return http.StatusForbidden, KindOwnerCannotBid, "the auction owner cannot bid"
	case errors.Is(err, auctionerrors.ErrItemNotActive):
		return http.StatusConflict, KindItemNotActive, "item is not open for bidding"
	case errors.Is(err, auctionerrors.ErrItemAlreadySold):
		return http.StatusConflict, KindItemAlreadySold, "item is already closed"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, KindAuctionEnded, "auction has ended"
	case errors.Is(err, auctionerrors.ErrBiddingWindowClosed):
		return http.StatusConflict, KindBiddingWindowClosed, "bidding window has closed"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, KindBidTooLow, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusConflict, KindInsufficientFunds, "wallet balance too low for this bid"
	case errors.Is(err, auctionerrors.ErrBidRaceExhausted):
		return http.StatusConflict, KindBidRaceExhausted, "too many concurrent bids, try again"
	case errors.Is(err, auctionerrors.ErrActiveItemConflict):
		return http.StatusConflict, KindActiveItemConflict, "another item is already active"
	case errors.Is(err, auctionerrors.ErrInvalidDuration):
		return http.StatusBadRequest, KindInvalidDuration, "timer duration must be positive"
	case errors.Is(err, auctionerrors.ErrEmptyMessage):
		return http.StatusBadRequest, KindEmptyMessage, "chat message is empty"
	case errors.Is(err, auctionerrors.ErrResetFailed):
		return http.StatusInternalServerError, KindResetFailed, "reset rolled back, auction unchanged"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, KindInvalidRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, KindInternal, "internal server error"
	}
}

// HandleServiceError maps, responds and logs a failed service call in one place
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, kind, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, kind, message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["kind"] = kind
	ctx["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
	} else {
		utils.Warn(handlerName+": "+message, ctx)
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
