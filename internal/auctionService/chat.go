package auction

import (
	"fmt"
	"strings"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"
	"live-auction/utils"
)

// PostMessage appends one live-commentary message to the auction's chat.
// Messages are never edited or deleted; only a full reset purges them.
func (s *AuctionService) PostMessage(auctionID, authorID, text string) (model.ChatMessage, error) {
	if authorID == "" {
		return model.ChatMessage{}, fmt.Errorf("service: %w", auctionerrors.ErrUnauthenticated)
	}
	if strings.TrimSpace(text) == "" {
		return model.ChatMessage{}, fmt.Errorf("service: %w", auctionerrors.ErrEmptyMessage)
	}
	if _, err := s.ledger.GetAuction(auctionID); err != nil {
		return model.ChatMessage{}, fmt.Errorf("service: %w", err)
	}

	msg := model.ChatMessage{
		MessageID: utils.GenerateID(),
		AuctionID: auctionID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ledger.AppendMessage(msg); err != nil {
		return model.ChatMessage{}, fmt.Errorf("service: failed to append chat message for auction %s: %w", auctionID, err)
	}
	return msg, nil
}

// ReadMessages returns the most recent limit messages in ascending
// chronological order. Zero or negative limits fall back to the configured
// default; reads are always capped.
func (s *AuctionService) ReadMessages(auctionID string, limit int) ([]model.ChatMessage, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = s.cfg.ChatReadbackLimit
	}
	if limit > s.cfg.ChatReadbackCap {
		limit = s.cfg.ChatReadbackCap
	}
	if _, err := s.ledger.GetAuction(auctionID); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	msgs, err := s.ledger.RecentMessages(auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read chat for auction %s: %w", auctionID, err)
	}
	return msgs, nil
}
