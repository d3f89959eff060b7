package auction

import (
	"fmt"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
)

// GetLiveState assembles the viewer read model: auction record, full catalog
// annotated with current bids and statuses, active item, remaining countdown
// computed at read time, and a bounded chat window. All rows come from a
// single logical read point in the ledger.
func (s *AuctionService) GetLiveState(auctionID string) (model.Snapshot, error) {
	if auctionID == "" {
		return model.Snapshot{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}

	rows, err := s.ledger.Snapshot(auctionID, s.cfg.ChatReadbackLimit)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("service: %w", err)
	}

	now := time.Now().UTC()
	rem, _ := remainingTime(rows.Auction, now)

	snap := model.Snapshot{
		Auction:          rows.Auction,
		Items:            make([]model.ItemView, 0, len(rows.Items)),
		ActiveItemID:     rows.Auction.ActiveItemID,
		RemainingSeconds: int64(rem / time.Second),
		Ended:            auctionEnded(rows.Auction, now),
		Chat:             rows.Chat,
		GeneratedAt:      now,
	}
	for _, item := range rows.Items {
		view := model.ItemView{Item: item, Status: item.Status(rows.Auction.ActiveItemID)}
		if bid, ok := rows.CurrentBids[item.ItemID]; ok {
			b := bid
			view.CurrentBid = &b
		}
		snap.Items = append(snap.Items, view)
	}
	return snap, nil
}
