package models

import "time"

// ItemStatus is the lifecycle state of an auction item.
type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemActive  ItemStatus = "active"
	ItemSold    ItemStatus = "sold"
	ItemUnsold  ItemStatus = "unsold"
)

// Auction represents a timed auction owned by a single user. The active-item
// reference and the timer fields are the only mutable shared state on the row.
type Auction struct {
	AuctionID            string     `json:"auction_id"`
	OwnerID              string     `json:"owner_id"`
	Title                string     `json:"title"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               time.Time  `json:"ends_at"`
	TimerStartedAt       *time.Time `json:"timer_started_at,omitempty"`
	TimerDurationSeconds *int64     `json:"timer_duration_seconds,omitempty"`
	ActiveItemID         *string    `json:"active_item_id,omitempty"`
}

// Item represents a lot inside an auction. Sold and Closed together encode the
// terminal states: closed+sold is a sale, closed without sold went unsold.
type Item struct {
	ItemID       string  `json:"item_id"`
	AuctionID    string  `json:"auction_id"`
	OwnerID      string  `json:"owner_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	MinBid       float64 `json:"min_bid"`
	BidIncrement float64 `json:"bid_increment"`
	Sold         bool    `json:"sold"`
	Closed       bool    `json:"closed"`
}

// Status derives the item's lifecycle state given the auction's active-item reference.
func (i Item) Status(activeItemID *string) ItemStatus {
	switch {
	case i.Closed && i.Sold:
		return ItemSold
	case i.Closed:
		return ItemUnsold
	case activeItemID != nil && *activeItemID == i.ItemID:
		return ItemActive
	default:
		return ItemPending
	}
}

// Bid is one accepted bid. The same shape backs both the per-item current bid
// and the append-only bid history.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ItemID    string    `json:"item_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// CommittedBid is the result of a successful bid placement.
type CommittedBid struct {
	Bid        Bid     `json:"bid"`
	NextMinBid float64 `json:"next_min_bid"`
}

// TimerExtension carries an anti-sniping countdown restart that must commit in
// the same transaction as the bid that triggered it.
type TimerExtension struct {
	StartedAt       time.Time
	DurationSeconds int64
}

// ChatMessage is one append-only live-commentary message scoped to an auction.
type ChatMessage struct {
	MessageID string    `json:"message_id"`
	AuctionID string    `json:"auction_id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemView is an item annotated with its derived status and current winning bid.
type ItemView struct {
	Item
	Status     ItemStatus `json:"status"`
	CurrentBid *Bid       `json:"current_bid,omitempty"`
}

// Snapshot is the consistent point-in-time read model served to viewers.
type Snapshot struct {
	Auction          Auction       `json:"auction"`
	Items            []ItemView    `json:"items"`
	ActiveItemID     *string       `json:"active_item_id,omitempty"`
	RemainingSeconds int64         `json:"remaining_seconds"`
	Ended            bool          `json:"ended"`
	Chat             []ChatMessage `json:"chat"`
	GeneratedAt      time.Time     `json:"generated_at"`
}

// CloseResult reports the terminal state reached by a close call. AlreadyClosed
// marks the idempotent no-op case.
type CloseResult struct {
	ItemID        string     `json:"item_id"`
	Status        ItemStatus `json:"status"`
	WinningBid    *Bid       `json:"winning_bid,omitempty"`
	AlreadyClosed bool       `json:"already_closed"`
}
