package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrNoCurrentBid    = errors.New("no current bid for item")
	ErrBidConflict     = errors.New("current bid changed since read")
	ErrAlreadyClosed   = errors.New("item already closed")
)

// business logic errors
var (
	ErrInvalidInput        = errors.New("invalid request")
	ErrUnauthenticated     = errors.New("actor not authenticated")
	ErrNotOwner            = errors.New("actor is not the auction owner")
	ErrOwnerCannotBid      = errors.New("owner cannot bid on own auction")
	ErrItemNotActive       = errors.New("item is not the active item")
	ErrItemAlreadySold     = errors.New("item already sold")
	ErrAuctionEnded        = errors.New("auction has ended")
	ErrBiddingWindowClosed = errors.New("bidding window closed")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrInsufficientFunds   = errors.New("insufficient wallet balance")
	ErrBidRaceExhausted    = errors.New("bid retries exhausted")
	ErrActiveItemConflict  = errors.New("another item is already active")
	ErrInvalidDuration     = errors.New("timer duration must be positive")
	ErrEmptyMessage        = errors.New("chat message is empty")
	ErrResetFailed         = errors.New("auction reset rolled back")
)
