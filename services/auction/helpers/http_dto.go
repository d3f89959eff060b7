package helpers

// Request/Response DTOs

type PlaceBidRequest struct {
	ItemID string  `json:"item_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type SetActiveItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type AdjustTimerRequest struct {
	DurationSeconds int64 `json:"duration_seconds" binding:"required"`
}

type PostMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ItemID    string  `json:"item_id"`
	BidderID  string  `json:"bidder_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type PlaceBidResponse struct {
	BidResponse
	NextMinBid float64 `json:"next_min_bid"`
}

type CloseItemResponse struct {
	ItemID        string       `json:"item_id"`
	Status        string       `json:"status"`
	AlreadyClosed bool         `json:"already_closed"`
	WinningBid    *BidResponse `json:"winning_bid,omitempty"`
}

type ChatMessageResponse struct {
	MessageID string `json:"message_id"`
	AuctionID string `json:"auction_id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}
