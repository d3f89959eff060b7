package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"

	"github.com/stretchr/testify/require"
)

func glassLamp() model.Item {
	return model.Item{ItemID: "item1", Title: "Glass Lamp", Description: "stained glass", MinBid: 10, BidIncrement: 5}
}

func oakDesk() model.Item {
	return model.Item{ItemID: "item2", Title: "Oak Desk", Description: "roll top", MinBid: 200, BidIncrement: 25}
}

// The full bid flow: activation, floor enforcement, increment enforcement and
// the advertised next minimum.
func TestBidFlow(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())
	env.SeedProfile(t, "user1", 1000)
	env.SeedProfile(t, "user2", 1000)

	// bidding before activation is rejected
	_, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusConflict, w.Code)

	_, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	// opening bid at the minimum is accepted
	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusCreated, w.Code)
	d := data(t, resp)
	require.Equal(t, 10.0, d["amount"])
	require.Equal(t, 15.0, d["next_min_bid"])
	require.NotEmpty(t, d["bid_id"])
	_, err := time.Parse(time.RFC3339, d["created_at"].(string))
	require.NoError(t, err)

	// 12 is above the current bid but below current+increment
	resp, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user2",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 12})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, helpers.KindBidTooLow, resp["error"])

	resp, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user2",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 15})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 20.0, data(t, resp)["next_min_bid"])

	// history holds both accepted bids in order
	resp, w = env.ExecuteRequestAndParse(t, http.MethodGet, "/items/item1/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := resp["data"].([]any)
	require.Len(t, bids, 2)
	require.Equal(t, 10.0, bids[0].(map[string]any)["amount"])
	require.Equal(t, 15.0, bids[1].(map[string]any)["amount"])
}

// Wallet balance gates bids without debiting
func TestBidWalletGate(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())
	env.SeedProfile(t, "user1", 50)
	env.SeedProfile(t, "user2", 60)

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 60})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, helpers.KindInsufficientFunds, resp["error"])

	// balance equal to or above the amount passes
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user2",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 50})
	require.Equal(t, http.StatusCreated, w.Code)
}

// The auction owner cannot bid on their own lots
func TestOwnerCannotBid(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())
	env.SeedProfile(t, "owner1", 1000)

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "owner1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, helpers.KindOwnerCannotBid, resp["error"])
}

// Mutating calls without an identity header are rejected
func TestUnauthenticatedRequests(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())

	for _, call := range []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodPost, "/auctions/auction1/bids", helpers.PlaceBidRequest{ItemID: "item1", Amount: 10}},
		{http.MethodPut, "/auctions/auction1/active-item", helpers.SetActiveItemRequest{ItemID: "item1"}},
		{http.MethodPost, "/auctions/auction1/items/item1/close", nil},
		{http.MethodPut, "/auctions/auction1/timer", helpers.AdjustTimerRequest{DurationSeconds: 60}},
		{http.MethodPost, "/auctions/auction1/chat", helpers.PostMessageRequest{Text: "hi"}},
		{http.MethodPost, "/auctions/auction1/reset", nil},
	} {
		resp, w := env.ExecuteRequestAndParse(t, call.method, call.url, "", call.body)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", call.method, call.url)
		require.Equal(t, helpers.KindUnauthenticated, resp["error"])
	}
}

// Only one item may be active at a time
func TestSingleActiveItem(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp(), oakDesk())

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item2"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, helpers.KindActiveItemConflict, resp["error"])

	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/items/item1/close", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item2"})
	require.Equal(t, http.StatusOK, w.Code)
}

// Closing an item with a bid marks it sold; closing again is an idempotent
// no-op reporting the same outcome.
func TestCloseItemIdempotent(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())
	env.SeedProfile(t, "user1", 1000)

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/items/item1/close", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, resp)
	require.Equal(t, "sold", d["status"])
	require.Equal(t, false, d["already_closed"])
	wb := d["winning_bid"].(map[string]any)
	require.Equal(t, "user1", wb["bidder_id"])
	require.Equal(t, 10.0, wb["amount"])

	resp, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/items/item1/close", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d = data(t, resp)
	require.Equal(t, "sold", d["status"])
	require.Equal(t, true, d["already_closed"])
}

// An item closed without bids goes unsold
func TestCloseItemUnsold(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", oakDesk())

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item2"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/items/item2/close", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, resp)
	require.Equal(t, "unsold", d["status"])
	require.Nil(t, d["winning_bid"])
}

// Chat messages append and read back in chronological order
func TestChatFlow(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())

	for _, text := range []string{"welcome everyone", "first lot coming up", "going once"} {
		_, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/chat", "user1",
			helpers.PostMessageRequest{Text: text})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	resp, w := env.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/auction1/chat?limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := resp["data"].([]any)
	require.Len(t, msgs, 2)
	require.Equal(t, "first lot coming up", msgs[0].(map[string]any)["text"])
	require.Equal(t, "going once", msgs[1].(map[string]any)["text"])

	// blank messages never land
	resp, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/chat", "user1",
		helpers.PostMessageRequest{Text: "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, helpers.KindEmptyMessage, resp["error"])
}

// The live snapshot assembles catalog, statuses, current bid and chat
func TestLiveSnapshot(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp(), oakDesk())
	env.SeedProfile(t, "user1", 1000)

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/chat", "user1",
		helpers.PostMessageRequest{Text: "nice lamp"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/auction1/live", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, resp)
	require.Equal(t, "item1", d["active_item_id"])
	require.Equal(t, false, d["ended"])
	require.Greater(t, d["remaining_seconds"].(float64), 0.0)

	items := d["items"].([]any)
	require.Len(t, items, 2)
	byID := map[string]map[string]any{}
	for _, raw := range items {
		item := raw.(map[string]any)
		byID[item["item_id"].(string)] = item
	}
	require.Equal(t, "active", byID["item1"]["status"])
	require.Equal(t, 10.0, byID["item1"]["current_bid"].(map[string]any)["amount"])
	require.Equal(t, "pending", byID["item2"]["status"])

	chat := d["chat"].([]any)
	require.Len(t, chat, 1)
	require.Equal(t, "nice lamp", chat[0].(map[string]any)["text"])
}

// Owner restarts the countdown with an absolute duration
func TestAdjustTimer(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	_, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/timer", "owner1",
		helpers.AdjustTimerRequest{DurationSeconds: 120})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/auction1/live", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	remaining := data(t, resp)["remaining_seconds"].(float64)
	require.Greater(t, remaining, 100.0)

	resp, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/timer", "user1",
		helpers.AdjustTimerRequest{DurationSeconds: 120})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, helpers.KindNotOwner, resp["error"])
}

// Reset returns the auction to its pristine pre-start state
func TestResetAuction(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp(), oakDesk())
	env.SeedProfile(t, "user1", 1000)

	_, w := env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusCreated, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/items/item1/close", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/chat", "user1",
		helpers.PostMessageRequest{Text: "sold!"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/reset", "user1", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, helpers.KindNotOwner, resp["error"])

	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/reset", "owner1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/auction1/live", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, resp)
	require.Nil(t, d["active_item_id"])
	require.Equal(t, 0.0, d["remaining_seconds"])
	for _, raw := range d["items"].([]any) {
		require.Equal(t, "pending", raw.(map[string]any)["status"])
	}
	require.Empty(t, d["chat"])

	resp, w = env.ExecuteRequestAndParse(t, http.MethodGet, "/items/item1/bids", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, resp["data"])

	// the catalog survives: the same item can be run again
	_, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)
	_, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "item1", Amount: 10})
	require.Equal(t, http.StatusCreated, w.Code)
}

// Unknown auctions and items map to NotFound
func TestNotFoundMapping(t *testing.T) {
	env := SetupTestEnv(t)
	env.SeedAuction(t, "auction1", glassLamp())
	env.SeedProfile(t, "user1", 1000)

	resp, w := env.ExecuteRequestAndParse(t, http.MethodGet, "/auctions/ghost/live", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, helpers.KindNotFound, resp["error"])

	_, w = env.ExecuteRequestAndParse(t, http.MethodPut, "/auctions/auction1/active-item", "owner1",
		helpers.SetActiveItemRequest{ItemID: "item1"})
	require.Equal(t, http.StatusOK, w.Code)

	resp, w = env.ExecuteRequestAndParse(t, http.MethodPost, "/auctions/auction1/bids", "user1",
		helpers.PlaceBidRequest{ItemID: "ghost", Amount: 10})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, helpers.KindItemNotActive, resp["error"])
}
