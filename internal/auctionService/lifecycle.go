package auction

import (
	"errors"
	"fmt"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
	"live-auction/utils"
)

// SetActiveItem opens one pending item of the auction for bidding and starts
// its countdown. Owner-only. At most one item may be active at a time: if
// another item is active and unclosed, or a concurrent activation wins the
// race, the call fails with ErrActiveItemConflict.
func (s *AuctionService) SetActiveItem(auctionID, itemID, actorID string) error {
	if itemID == "" {
		return fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidInput)
	}
	a, err := s.ownedAuction(auctionID, actorID)
	if err != nil {
		return err
	}
	if a.ActiveItemID != nil {
		return fmt.Errorf("service: %w - item %s is still active", auctionerrors.ErrActiveItemConflict, *a.ActiveItemID)
	}

	item, err := s.ledger.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if item.AuctionID != auctionID {
		return fmt.Errorf("service: %w - item %s belongs to another auction", auctionerrors.ErrItemNotFound, itemID)
	}
	if item.Closed {
		return fmt.Errorf("service: %w - item %s is closed and cannot be reopened", auctionerrors.ErrItemAlreadySold, itemID)
	}

	now := time.Now().UTC()
	if err := s.ledger.ActivateItem(auctionID, itemID, now, s.cfg.DefaultTimerSeconds); err != nil {
		return fmt.Errorf("service: failed to activate item %s: %w", itemID, err)
	}

	utils.Info("item activated", map[string]any{
		"auction_id":       auctionID,
		"item_id":          itemID,
		"duration_seconds": s.cfg.DefaultTimerSeconds,
	})
	return nil
}

// CloseItem closes the auction's active item: Sold when a current bid exists,
// Unsold otherwise. Idempotent: closing an already-closed item reports the
// terminal state as a no-op success so network retries stay safe.
func (s *AuctionService) CloseItem(auctionID, itemID, actorID string) (model.CloseResult, error) {
	if itemID == "" {
		return model.CloseResult{}, fmt.Errorf("service: %w - missing itemID", auctionerrors.ErrInvalidInput)
	}
	a, err := s.ownedAuction(auctionID, actorID)
	if err != nil {
		return model.CloseResult{}, err
	}

	item, err := s.ledger.GetItem(itemID)
	if err != nil {
		return model.CloseResult{}, fmt.Errorf("service: %w", err)
	}
	if item.AuctionID != auctionID {
		return model.CloseResult{}, fmt.Errorf("service: %w - item %s belongs to another auction", auctionerrors.ErrItemNotFound, itemID)
	}
	if item.Closed {
		return s.closedResult(item)
	}
	if a.ActiveItemID == nil || *a.ActiveItemID != itemID {
		return model.CloseResult{}, fmt.Errorf("service: %w - item %s is not open for bidding", auctionerrors.ErrItemNotActive, itemID)
	}

	var winning *model.Bid
	bid, err := s.ledger.GetCurrentBid(itemID)
	switch {
	case err == nil:
		winning = &bid
	case errors.Is(err, auctionerrors.ErrNoCurrentBid):
		// closes unsold
	default:
		return model.CloseResult{}, fmt.Errorf("service: failed to read current bid for item %s: %w", itemID, err)
	}

	if err := s.ledger.CloseActiveItem(auctionID, itemID, winning != nil); err != nil {
		if errors.Is(err, auctionerrors.ErrAlreadyClosed) {
			// a concurrent close got there first; report its terminal state
			item, err = s.ledger.GetItem(itemID)
			if err != nil {
				return model.CloseResult{}, fmt.Errorf("service: %w", err)
			}
			return s.closedResult(item)
		}
		return model.CloseResult{}, fmt.Errorf("service: failed to close item %s: %w", itemID, err)
	}

	status := model.ItemUnsold
	if winning != nil {
		status = model.ItemSold
	}
	utils.Info("item closed", map[string]any{
		"auction_id": auctionID,
		"item_id":    itemID,
		"status":     string(status),
	})
	return model.CloseResult{ItemID: itemID, Status: status, WinningBid: winning}, nil
}

// closedResult builds the idempotent response for an item that is already terminal.
func (s *AuctionService) closedResult(item model.Item) (model.CloseResult, error) {
	res := model.CloseResult{ItemID: item.ItemID, Status: item.Status(nil), AlreadyClosed: true}
	if item.Sold {
		bid, err := s.ledger.GetCurrentBid(item.ItemID)
		if err != nil && !errors.Is(err, auctionerrors.ErrNoCurrentBid) {
			return model.CloseResult{}, fmt.Errorf("service: failed to read winning bid for item %s: %w", item.ItemID, err)
		}
		if err == nil {
			res.WinningBid = &bid
		}
	}
	return res, nil
}

// AdjustTimer is an owner-only absolute restart of the countdown: duration is
// set and the clock restarts now, never added to the remaining time.
func (s *AuctionService) AdjustTimer(auctionID string, durationSeconds int64, actorID string) error {
	if durationSeconds <= 0 {
		return fmt.Errorf("service: %w - got %d", auctionerrors.ErrInvalidDuration, durationSeconds)
	}
	if _, err := s.ownedAuction(auctionID, actorID); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.ledger.SetTimer(auctionID, now, durationSeconds); err != nil {
		return fmt.Errorf("service: failed to set timer for auction %s: %w", auctionID, err)
	}

	utils.Info("timer adjusted", map[string]any{
		"auction_id":       auctionID,
		"duration_seconds": durationSeconds,
	})
	return nil
}
