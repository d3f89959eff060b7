package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auction "live-auction/internal/auctionService"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/internal/server"
	"live-auction/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the router with the backing store so tests can seed state
// directly while exercising the full HTTP surface.
type testEnv struct {
	Router   *gin.Engine
	Ledger   *repository.SQLiteLedger
	Profiles *wallet.ProfileStore
}

// SetupTestEnv initializes the router over a fresh in-memory database.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.EnsureSchema(db))
	ledger := repository.NewSQLiteLedger(db)

	profiles := wallet.NewProfileStore(db)
	service := auction.NewAuctionService(ledger, profiles, auction.DefaultConfig())
	router := server.SetupRouter(service)

	return &testEnv{Router: router, Ledger: ledger, Profiles: profiles}
}

// SeedAuction inserts an open auction owned by owner1 with the given items.
func (env *testEnv) SeedAuction(t *testing.T, auctionID string, items ...model.Item) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, env.Ledger.InsertAuction(model.Auction{
		AuctionID: auctionID,
		OwnerID:   "owner1",
		Title:     "Saturday Estate Sale",
		StartsAt:  now,
		EndsAt:    now.Add(8 * time.Hour),
	}))
	for _, item := range items {
		item.AuctionID = auctionID
		if item.OwnerID == "" {
			item.OwnerID = "owner1"
		}
		require.NoError(t, env.Ledger.InsertItem(item))
	}
}

// SeedProfile inserts a wallet profile.
func (env *testEnv) SeedProfile(t *testing.T, userID string, balance float64) {
	t.Helper()
	require.NoError(t, env.Profiles.UpsertProfile(userID, userID, balance))
}

// ExecuteRequestAndParse executes an HTTP request as the given user and parses
// the JSON envelope. An empty userID sends no identity header.
func (env *testEnv) ExecuteRequestAndParse(t *testing.T, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data extracts the data object from a successful envelope.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}
