package auction

import (
	"errors"
	"testing"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
	"live-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Tests PostMessage
func TestAuctionService_PostMessage(t *testing.T) {
	tests := []struct {
		name          string
		authorID      string
		text          string
		mockSetup     func(ledger *repository.MockAuctionLedger)
		expectedError error
	}{
		{
			name:     "appends_message",
			authorID: "user1", text: "going once!",
			mockSetup: func(ledger *repository.MockAuctionLedger) {
				ledger.EXPECT().GetAuction("auction1").Return(auctionFixture(-1), nil)
				ledger.EXPECT().AppendMessage(gomock.Any()).Return(nil)
			},
		},
		{
			name:     "missing_author",
			authorID: "", text: "hello",
			mockSetup:     func(*repository.MockAuctionLedger) {},
			expectedError: auctionerrors.ErrUnauthenticated,
		},
		{
			name:     "empty_text",
			authorID: "user1", text: "",
			mockSetup:     func(*repository.MockAuctionLedger) {},
			expectedError: auctionerrors.ErrEmptyMessage,
		},
		{
			name:     "whitespace_only_text",
			authorID: "user1", text: "   \t\n",
			mockSetup:     func(*repository.MockAuctionLedger) {},
			expectedError: auctionerrors.ErrEmptyMessage,
		},
		{
			name:     "auction_missing",
			authorID: "user1", text: "hello",
			mockSetup: func(ledger *repository.MockAuctionLedger) {
				ledger.EXPECT().GetAuction("auction1").Return(model.Auction{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedError: auctionerrors.ErrAuctionNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, ledger := newServiceWithMocks(t)
			tc.mockSetup(ledger)

			msg, err := service.PostMessage("auction1", tc.authorID, tc.text)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}

			require.NoError(t, err)
			_, parseErr := uuid.Parse(msg.MessageID)
			require.NoError(t, parseErr)
			require.Equal(t, "auction1", msg.AuctionID)
			require.Equal(t, tc.authorID, msg.AuthorID)
			require.Equal(t, tc.text, msg.Text)
		})
	}
}

// Tests ReadMessages limit handling
func TestAuctionService_ReadMessages(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		expectedLimit int
	}{
		{name: "default_limit", limit: 0, expectedLimit: 50},
		{name: "negative_limit_uses_default", limit: -5, expectedLimit: 50},
		{name: "explicit_limit", limit: 20, expectedLimit: 20},
		{name: "capped_limit", limit: 10000, expectedLimit: 200},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			service, ledger := newServiceWithMocks(t)

			msgs := []model.ChatMessage{
				{MessageID: "m1", AuctionID: "auction1", AuthorID: "user1", Text: "hi", CreatedAt: time.Now().UTC()},
			}
			ledger.EXPECT().GetAuction("auction1").Return(auctionFixture(-1), nil)
			ledger.EXPECT().RecentMessages("auction1", tc.expectedLimit).Return(msgs, nil)

			got, err := service.ReadMessages("auction1", tc.limit)
			require.NoError(t, err)
			require.Equal(t, msgs, got)
		})
	}
}

// Tests GetLiveState
func TestAuctionService_GetLiveState(t *testing.T) {
	t.Run("assembles_snapshot", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		a := auctionFixture(30)
		soldItem := itemFixture()
		soldItem.ItemID, soldItem.Sold, soldItem.Closed = "item0", true, true
		activeItem := itemFixture()
		pendingItem := itemFixture()
		pendingItem.ItemID = "item2"

		rows := repository.SnapshotRows{
			Auction: a,
			Items:   []model.Item{soldItem, activeItem, pendingItem},
			CurrentBids: map[string]model.Bid{
				"item0": {BidID: "b0", ItemID: "item0", BidderID: "user2", Amount: 40},
				"item1": {BidID: "b1", ItemID: "item1", BidderID: "user1", Amount: 25},
			},
			Chat: []model.ChatMessage{{MessageID: "m1", AuctionID: "auction1", AuthorID: "user1", Text: "hi"}},
		}
		ledger.EXPECT().Snapshot("auction1", 50).Return(rows, nil)

		snap, err := service.GetLiveState("auction1")
		require.NoError(t, err)
		require.Equal(t, a.AuctionID, snap.Auction.AuctionID)
		require.NotNil(t, snap.ActiveItemID)
		require.Equal(t, "item1", *snap.ActiveItemID)
		require.False(t, snap.Ended)
		require.InDelta(t, 30, snap.RemainingSeconds, 2)
		require.Len(t, snap.Items, 3)
		require.Len(t, snap.Chat, 1)

		byID := map[string]model.ItemView{}
		for _, v := range snap.Items {
			byID[v.ItemID] = v
		}
		require.Equal(t, model.ItemSold, byID["item0"].Status)
		require.NotNil(t, byID["item0"].CurrentBid)
		require.Equal(t, model.ItemActive, byID["item1"].Status)
		require.Equal(t, 25.0, byID["item1"].CurrentBid.Amount)
		require.Equal(t, model.ItemPending, byID["item2"].Status)
		require.Nil(t, byID["item2"].CurrentBid)
	})

	t.Run("auction_not_found", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		ledger.EXPECT().Snapshot("missing", 50).Return(repository.SnapshotRows{}, auctionerrors.ErrAuctionNotFound)

		_, err := service.GetLiveState("missing")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})

	t.Run("expired_timer_reports_zero", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		rows := repository.SnapshotRows{Auction: auctionFixture(0)}
		ledger.EXPECT().Snapshot("auction1", 50).Return(rows, nil)

		snap, err := service.GetLiveState("auction1")
		require.NoError(t, err)
		require.Equal(t, int64(0), snap.RemainingSeconds)
	})
}

// Tests Reset
func TestAuctionService_Reset(t *testing.T) {
	t.Run("owner_resets", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		ledger.EXPECT().GetAuction("auction1").Return(auctionFixture(-1), nil)
		ledger.EXPECT().ResetAuction("auction1").Return(nil)

		require.NoError(t, service.Reset("auction1", "owner1"))
	})

	t.Run("non_owner_rejected", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		ledger.EXPECT().GetAuction("auction1").Return(auctionFixture(-1), nil)

		err := service.Reset("auction1", "user1")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrNotOwner))
	})

	t.Run("rollback_surfaces_reset_failed", func(t *testing.T) {
		service, ledger := newServiceWithMocks(t)

		ledger.EXPECT().GetAuction("auction1").Return(auctionFixture(-1), nil)
		ledger.EXPECT().ResetAuction("auction1").Return(errors.New("disk full"))

		err := service.Reset("auction1", "owner1")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrResetFailed))
	})
}
