package wallet

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrProfileNotFound reports a bidder with no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// BalanceProvider is the read-only wallet dependency of bid placement. The
// engine only verifies funds; it never debits at bid time.
type BalanceProvider interface {
	GetBalance(userID string) (float64, error)
}

// ProfileStore reads wallet balances from the profiles table
type ProfileStore struct {
	db *sqlx.DB
}

// NewProfileStore creates a ProfileStore over an existing connection
func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// GetBalance returns the user's wallet balance, read fresh on every call
func (s *ProfileStore) GetBalance(userID string) (float64, error) {
	var balance float64
	err := s.db.Get(&balance, `SELECT wallet_balance FROM profiles WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("get balance for user %s: %w", userID, ErrProfileNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("get balance for user %s: %w", userID, err)
	}
	return balance, nil
}

// UpsertProfile sets a user's profile and balance. Used by seeding and tests.
func (s *ProfileStore) UpsertProfile(userID, username string, balance float64) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles(user_id, username, wallet_balance)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET username = excluded.username, wallet_balance = excluded.wallet_balance
	`, userID, username, balance)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", userID, err)
	}
	return nil
}
