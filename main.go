package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	auction "live-auction/internal/auctionService"
	model "live-auction/internal/models"
	"live-auction/internal/repository"
	"live-auction/internal/server"
	"live-auction/internal/wallet"

	_ "github.com/joho/godotenv/autoload"
)

func main() {

	ledger, err := repository.Open(getenv("AUCTION_DB_DSN", "file:auction.db?_pragma=busy_timeout(5000)"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open auction ledger: %v\n", err)
		os.Exit(1)
	}

	profiles := wallet.NewProfileStore(ledger.DB())

	if err := seedDemoData(ledger, profiles); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed demo data: %v\n", err)
		os.Exit(1)
	}

	cfg := auction.Config{
		SnipeWindowSeconds:  getenvInt64("SNIPE_WINDOW_SECONDS", 10),
		DefaultTimerSeconds: getenvInt64("DEFAULT_TIMER_SECONDS", 60),
		ChatReadbackLimit:   int(getenvInt64("CHAT_READBACK_LIMIT", 50)),
	}
	auctionSvc := auction.NewAuctionService(ledger, profiles, cfg)

	router := server.SetupRouter(auctionSvc)

	port := getPort()
	fmt.Printf("Starting live auction server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoData adds a sample auction, items and bidder profiles on first run
func seedDemoData(ledger *repository.SQLiteLedger, profiles *wallet.ProfileStore) error {
	if _, err := ledger.GetAuction("auction1"); err == nil {
		return nil
	}

	now := time.Now().UTC()
	if err := ledger.InsertAuction(model.Auction{
		AuctionID: "auction1",
		OwnerID:   "owner1",
		Title:     "Saturday Estate Sale",
		StartsAt:  now,
		EndsAt:    now.Add(8 * time.Hour),
	}); err != nil {
		return err
	}

	items := []model.Item{
		{ItemID: "item1", AuctionID: "auction1", OwnerID: "owner1", Title: "title1", Description: "description1", MinBid: 100, BidIncrement: 10},
		{ItemID: "item2", AuctionID: "auction1", OwnerID: "owner1", Title: "title2", Description: "description2", MinBid: 200, BidIncrement: 25},
		{ItemID: "item3", AuctionID: "auction1", OwnerID: "owner1", Title: "title3", Description: "description3", MinBid: 150, BidIncrement: 10},
	}
	for _, item := range items {
		if err := ledger.InsertItem(item); err != nil {
			return err
		}
	}

	bidders := []struct {
		id, name string
		balance  float64
	}{
		{"user1", "user1", 1000},
		{"user2", "user2", 500},
		{"user3", "user3", 250},
	}
	for _, b := range bidders {
		if err := profiles.UpsertProfile(b.id, b.name, b.balance); err != nil {
			return err
		}
	}
	return nil
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
