package handler

import (
	"net/http"
	"strconv"
	"time"

	model "live-auction/internal/models"
	"live-auction/services/auction/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	PlaceBid(auctionID, itemID, bidderID string, amount float64) (model.CommittedBid, error)
	SetActiveItem(auctionID, itemID, actorID string) error
	CloseItem(auctionID, itemID, actorID string) (model.CloseResult, error)
	AdjustTimer(auctionID string, durationSeconds int64, actorID string) error
	PostMessage(auctionID, authorID, text string) (model.ChatMessage, error)
	ReadMessages(auctionID string, limit int) ([]model.ChatMessage, error)
	GetLiveState(auctionID string) (model.Snapshot, error)
	GetBidHistory(itemID string) ([]model.Bid, error)
	Reset(auctionID, actorID string) error
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func bidResponse(b model.Bid) helpers.BidResponse {
	return helpers.BidResponse{
		BidID:     b.BidID,
		ItemID:    b.ItemID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// PlaceBidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	bidderID, ok := helpers.RequireActor(c, "PlaceBidHandler")
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	auctionID := c.Param("auction_id")

	committed, err := h.service.PlaceBid(auctionID, req.ItemID, bidderID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": auctionID,
			"item_id":    req.ItemID,
			"bidder_id":  bidderID,
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		BidResponse: bidResponse(committed.Bid),
		NextMinBid:  committed.NextMinBid,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "bid committed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid committed successfully", map[string]any{
		"bid_id":     committed.Bid.BidID,
		"auction_id": auctionID,
		"item_id":    committed.Bid.ItemID,
		"bidder_id":  bidderID,
		"amount":     committed.Bid.Amount,
	})
}

// SetActiveItemHandler handles PUT /auctions/:auction_id/active-item
func (h *AuctionHandler) SetActiveItemHandler(c *gin.Context) {
	actorID, ok := helpers.RequireActor(c, "SetActiveItemHandler")
	if !ok {
		return
	}

	var req helpers.SetActiveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SetActiveItemHandler", err)
		return
	}
	auctionID := c.Param("auction_id")

	if err := h.service.SetActiveItem(auctionID, req.ItemID, actorID); err != nil {
		helpers.HandleServiceError(c, "SetActiveItemHandler", err, map[string]any{
			"auction_id": auctionID,
			"item_id":    req.ItemID,
			"actor_id":   actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID, "item_id": req.ItemID}, "item activated")
	helpers.LogSuccess("SetActiveItemHandler", "item activated", map[string]any{
		"auction_id": auctionID,
		"item_id":    req.ItemID,
	})
}

// CloseItemHandler handles POST /auctions/:auction_id/items/:item_id/close
func (h *AuctionHandler) CloseItemHandler(c *gin.Context) {
	actorID, ok := helpers.RequireActor(c, "CloseItemHandler")
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")
	itemID := c.Param("item_id")

	result, err := h.service.CloseItem(auctionID, itemID, actorID)
	if err != nil {
		helpers.HandleServiceError(c, "CloseItemHandler", err, map[string]any{
			"auction_id": auctionID,
			"item_id":    itemID,
			"actor_id":   actorID,
		})
		return
	}

	resp := helpers.CloseItemResponse{
		ItemID:        result.ItemID,
		Status:        string(result.Status),
		AlreadyClosed: result.AlreadyClosed,
	}
	if result.WinningBid != nil {
		b := bidResponse(*result.WinningBid)
		resp.WinningBid = &b
	}
	utils.JSONResponse(c, http.StatusOK, resp, "item closed")
	helpers.LogSuccess("CloseItemHandler", "item closed", map[string]any{
		"auction_id":     auctionID,
		"item_id":        itemID,
		"status":         resp.Status,
		"already_closed": result.AlreadyClosed,
	})
}

// AdjustTimerHandler handles PUT /auctions/:auction_id/timer
func (h *AuctionHandler) AdjustTimerHandler(c *gin.Context) {
	actorID, ok := helpers.RequireActor(c, "AdjustTimerHandler")
	if !ok {
		return
	}

	var req helpers.AdjustTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AdjustTimerHandler", err)
		return
	}
	auctionID := c.Param("auction_id")

	if err := h.service.AdjustTimer(auctionID, req.DurationSeconds, actorID); err != nil {
		helpers.HandleServiceError(c, "AdjustTimerHandler", err, map[string]any{
			"auction_id":       auctionID,
			"duration_seconds": req.DurationSeconds,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID, "duration_seconds": req.DurationSeconds}, "timer adjusted")
	helpers.LogSuccess("AdjustTimerHandler", "timer adjusted", map[string]any{
		"auction_id":       auctionID,
		"duration_seconds": req.DurationSeconds,
	})
}

// PostMessageHandler handles POST /auctions/:auction_id/chat
func (h *AuctionHandler) PostMessageHandler(c *gin.Context) {
	authorID, ok := helpers.RequireActor(c, "PostMessageHandler")
	if !ok {
		return
	}

	var req helpers.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostMessageHandler", err)
		return
	}
	auctionID := c.Param("auction_id")

	msg, err := h.service.PostMessage(auctionID, authorID, req.Text)
	if err != nil {
		helpers.HandleServiceError(c, "PostMessageHandler", err, map[string]any{
			"auction_id": auctionID,
			"author_id":  authorID,
		})
		return
	}

	resp := helpers.ChatMessageResponse{
		MessageID: msg.MessageID,
		AuctionID: msg.AuctionID,
		AuthorID:  msg.AuthorID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "message posted")
}

// ReadMessagesHandler handles GET /auctions/:auction_id/chat
func (h *AuctionHandler) ReadMessagesHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	msgs, err := h.service.ReadMessages(auctionID, limit)
	if err != nil {
		helpers.HandleServiceError(c, "ReadMessagesHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	out := make([]helpers.ChatMessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, helpers.ChatMessageResponse{
			MessageID: msg.MessageID,
			AuctionID: msg.AuctionID,
			AuthorID:  msg.AuthorID,
			Text:      msg.Text,
			CreatedAt: msg.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	utils.JSONResponse(c, http.StatusOK, out, "messages retrieved successfully")
}

// GetLiveStateHandler handles GET /auctions/:auction_id/live
func (h *AuctionHandler) GetLiveStateHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	snap, err := h.service.GetLiveState(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetLiveStateHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "live state retrieved successfully")
}

// GetBidHistoryHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	bids, err := h.service.GetBidHistory(itemID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidHistoryHandler", err, map[string]any{"item_id": itemID})
		return
	}

	out := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, bidResponse(b))
	}
	utils.JSONResponse(c, http.StatusOK, out, "bid history retrieved successfully")
}

// ResetAuctionHandler handles POST /auctions/:auction_id/reset
func (h *AuctionHandler) ResetAuctionHandler(c *gin.Context) {
	actorID, ok := helpers.RequireActor(c, "ResetAuctionHandler")
	if !ok {
		return
	}
	auctionID := c.Param("auction_id")

	if err := h.service.Reset(auctionID, actorID); err != nil {
		helpers.HandleServiceError(c, "ResetAuctionHandler", err, map[string]any{
			"auction_id": auctionID,
			"actor_id":   actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction reset")
	helpers.LogSuccess("ResetAuctionHandler", "auction reset", map[string]any{"auction_id": auctionID})
}
