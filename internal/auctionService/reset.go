package auction

import (
	"fmt"

	"live-auction/internal/auctionerrors"
	"live-auction/utils"
)

// Reset wipes all derived auction state in one transaction: bid history, chat,
// current bids, sold flags, timer and active-item reference. The auction and
// item catalog rows survive. Owner-only; any failure rolls back entirely and
// surfaces ErrResetFailed so a partial reset is never observable.
func (s *AuctionService) Reset(auctionID, actorID string) error {
	if _, err := s.ownedAuction(auctionID, actorID); err != nil {
		return err
	}

	if err := s.ledger.ResetAuction(auctionID); err != nil {
		utils.Error("auction reset rolled back", map[string]any{
			"auction_id": auctionID,
			"error":      err.Error(),
		})
		return fmt.Errorf("service: %w: %v", auctionerrors.ErrResetFailed, err)
	}

	utils.Info("auction reset", map[string]any{"auction_id": auctionID})
	return nil
}
