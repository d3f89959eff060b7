package auction

import (
	"fmt"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/internal/wallet"
)

const maxBidAttempts = 3

// Config tunes the live-auction engine
type Config struct {
	// SnipeWindowSeconds is the anti-sniping threshold: a bid accepted with
	// less remaining time than this restarts the countdown to exactly this.
	SnipeWindowSeconds int64
	// DefaultTimerSeconds is the countdown started when an item is activated.
	DefaultTimerSeconds int64
	// ChatReadbackLimit bounds chat reads when the caller gives no limit.
	ChatReadbackLimit int
	// ChatReadbackCap is the hard upper bound on any chat read.
	ChatReadbackCap int
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		SnipeWindowSeconds:  10,
		DefaultTimerSeconds: 60,
		ChatReadbackLimit:   50,
		ChatReadbackCap:     200,
	}
}

// AuctionService implements the live auction engine: bid placement, the
// active-item lifecycle, timer arithmetic, chat and the full-state reset.
type AuctionService struct {
	ledger repository.AuctionLedger
	wallet wallet.BalanceProvider
	cfg    Config
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(ledger repository.AuctionLedger, balances wallet.BalanceProvider, cfg Config) *AuctionService {
	if cfg.SnipeWindowSeconds <= 0 {
		cfg.SnipeWindowSeconds = DefaultConfig().SnipeWindowSeconds
	}
	if cfg.DefaultTimerSeconds <= 0 {
		cfg.DefaultTimerSeconds = DefaultConfig().DefaultTimerSeconds
	}
	if cfg.ChatReadbackLimit <= 0 {
		cfg.ChatReadbackLimit = DefaultConfig().ChatReadbackLimit
	}
	if cfg.ChatReadbackCap <= 0 {
		cfg.ChatReadbackCap = DefaultConfig().ChatReadbackCap
	}
	return &AuctionService{ledger: ledger, wallet: balances, cfg: cfg}
}

// ownedAuction loads the auction and enforces the owner-only check shared by
// every mutating lifecycle operation.
func (s *AuctionService) ownedAuction(auctionID, actorID string) (model.Auction, error) {
	if actorID == "" {
		return model.Auction{}, fmt.Errorf("service: %w", auctionerrors.ErrUnauthenticated)
	}
	a, err := s.ledger.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}
	if a.OwnerID != actorID {
		return model.Auction{}, fmt.Errorf("service: %w - auction %s belongs to another owner", auctionerrors.ErrNotOwner, auctionID)
	}
	return a, nil
}

// remainingTime computes the countdown left at now, clamped at zero. The
// second return is false when no timer has been started.
func remainingTime(a model.Auction, now time.Time) (time.Duration, bool) {
	if a.TimerStartedAt == nil || a.TimerDurationSeconds == nil {
		return 0, false
	}
	rem := time.Duration(*a.TimerDurationSeconds)*time.Second - now.Sub(*a.TimerStartedAt)
	if rem < 0 {
		rem = 0
	}
	return rem, true
}

func auctionEnded(a model.Auction, now time.Time) bool {
	return !now.Before(a.EndsAt)
}
