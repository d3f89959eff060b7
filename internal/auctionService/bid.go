package auction

import (
	"errors"
	"fmt"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
	"live-auction/utils"
)

// PlaceBid validates and commits a single bid against the auction's active
// item. The commit is an optimistic compare-and-swap keyed on the previously
// observed current bid; on conflict it re-validates against the new state up
// to maxBidAttempts before giving up with ErrBidRaceExhausted.
func (s *AuctionService) PlaceBid(auctionID, itemID, bidderID string, amount float64) (model.CommittedBid, error) {
	if bidderID == "" {
		return model.CommittedBid{}, fmt.Errorf("service: %w", auctionerrors.ErrUnauthenticated)
	}
	if auctionID == "" || itemID == "" {
		return model.CommittedBid{}, fmt.Errorf("service: %w - missing auctionID or itemID", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.CommittedBid{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	a, err := s.ledger.GetAuction(auctionID)
	if err != nil {
		return model.CommittedBid{}, fmt.Errorf("service: %w", err)
	}
	now := time.Now().UTC()
	if auctionEnded(a, now) {
		return model.CommittedBid{}, fmt.Errorf("service: %w - auction %s closed at %s", auctionerrors.ErrAuctionEnded, auctionID, a.EndsAt.Format(time.RFC3339))
	}
	if a.ActiveItemID == nil || *a.ActiveItemID != itemID {
		return model.CommittedBid{}, fmt.Errorf("service: %w - item %s is not open for bidding", auctionerrors.ErrItemNotActive, itemID)
	}

	item, err := s.ledger.GetItem(itemID)
	if err != nil {
		return model.CommittedBid{}, fmt.Errorf("service: %w", err)
	}
	if item.Sold {
		return model.CommittedBid{}, fmt.Errorf("service: %w - item %s", auctionerrors.ErrItemAlreadySold, itemID)
	}
	if bidderID == a.OwnerID {
		return model.CommittedBid{}, fmt.Errorf("service: %w", auctionerrors.ErrOwnerCannotBid)
	}
	if rem, running := remainingTime(a, now); running && rem <= 0 {
		return model.CommittedBid{}, fmt.Errorf("service: %w - countdown expired for item %s", auctionerrors.ErrBiddingWindowClosed, itemID)
	}

	// funds check happens immediately before the commit loop, never cached
	balance, err := s.wallet.GetBalance(bidderID)
	if err != nil {
		return model.CommittedBid{}, fmt.Errorf("service: failed to read wallet balance for user %s: %w", bidderID, err)
	}
	if balance < amount {
		return model.CommittedBid{}, fmt.Errorf("service: %w - need %.2f but have %.2f", auctionerrors.ErrInsufficientFunds, amount, balance)
	}

	for attempt := 0; attempt < maxBidAttempts; attempt++ {
		prevBidID := ""
		floor := item.MinBid
		prev, err := s.ledger.GetCurrentBid(itemID)
		switch {
		case err == nil:
			prevBidID = prev.BidID
			floor = prev.Amount + item.BidIncrement
		case errors.Is(err, auctionerrors.ErrNoCurrentBid):
			// first bid on the item
		default:
			return model.CommittedBid{}, fmt.Errorf("service: failed to read current bid for item %s: %w", itemID, err)
		}

		if amount < floor {
			return model.CommittedBid{}, fmt.Errorf("service: %w - minimum acceptable bid is %.2f", auctionerrors.ErrBidTooLow, floor)
		}

		commitAt := time.Now().UTC()
		bid := model.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: commitAt,
		}

		err = s.ledger.CommitBid(bid, prevBidID, s.snipeExtension(a, commitAt))
		if err == nil {
			utils.Info("bid committed", map[string]any{
				"auction_id": auctionID,
				"item_id":    itemID,
				"bidder_id":  bidderID,
				"amount":     amount,
				"attempt":    attempt + 1,
			})
			return model.CommittedBid{Bid: bid, NextMinBid: amount + item.BidIncrement}, nil
		}
		if !errors.Is(err, auctionerrors.ErrBidConflict) {
			return model.CommittedBid{}, fmt.Errorf("service: failed to commit bid for item %s by user %s: %w", itemID, bidderID, err)
		}
		// lost the compare-and-swap round: re-observe and re-validate
	}

	return model.CommittedBid{}, fmt.Errorf("service: %w - item %s after %d attempts", auctionerrors.ErrBidRaceExhausted, itemID, maxBidAttempts)
}

// snipeExtension returns the countdown restart an accepted bid triggers when
// it lands inside the anti-sniping window. Remaining time becomes exactly the
// window, measured from the commit timestamp; a longer remaining time is
// never shortened.
func (s *AuctionService) snipeExtension(a model.Auction, commitAt time.Time) *model.TimerExtension {
	rem, running := remainingTime(a, commitAt)
	if !running || rem >= time.Duration(s.cfg.SnipeWindowSeconds)*time.Second {
		return nil
	}
	return &model.TimerExtension{StartedAt: commitAt, DurationSeconds: s.cfg.SnipeWindowSeconds}
}

// GetBidHistory returns every accepted bid for an item in commit order
func (s *AuctionService) GetBidHistory(itemID string) ([]model.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrInvalidInput)
	}
	if _, err := s.ledger.GetItem(itemID); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	bids, err := s.ledger.ListBidHistory(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bid history for item %s: %w", itemID, err)
	}
	return bids, nil
}
