package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"live-auction/internal/auctionerrors"
	model "live-auction/internal/models"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// AuctionLedger defines the durable storage interface for the live auction engine
type AuctionLedger interface {
	GetAuction(auctionID string) (model.Auction, error)
	GetItem(itemID string) (model.Item, error)
	ListItems(auctionID string) ([]model.Item, error)
	GetCurrentBid(itemID string) (model.Bid, error)
	// CommitBid atomically replaces the current bid and appends a history row.
	// prevBidID is the compare-and-swap key: the bid id observed before
	// validation, or empty when no current bid existed. A non-nil ext restarts
	// the auction countdown inside the same transaction, but never to an
	// earlier deadline than already stored. The commit fails with
	// ErrItemNotActive when the item is no longer open for bidding.
	CommitBid(bid model.Bid, prevBidID string, ext *model.TimerExtension) error
	ListBidHistory(itemID string) ([]model.Bid, error)
	ActivateItem(auctionID, itemID string, startedAt time.Time, durationSeconds int64) error
	CloseActiveItem(auctionID, itemID string, sold bool) error
	SetTimer(auctionID string, startedAt time.Time, durationSeconds int64) error
	AppendMessage(msg model.ChatMessage) error
	RecentMessages(auctionID string, limit int) ([]model.ChatMessage, error)
	Snapshot(auctionID string, chatLimit int) (SnapshotRows, error)
	ResetAuction(auctionID string) error
}

// SnapshotRows is the raw state read at a single point for snapshot assembly.
type SnapshotRows struct {
	Auction     model.Auction
	Items       []model.Item
	CurrentBids map[string]model.Bid
	Chat        []model.ChatMessage
}

// SQLiteLedger is a sqlite-backed implementation of AuctionLedger
type SQLiteLedger struct {
	db *sqlx.DB
}

// Open connects to the sqlite database at dsn and bootstraps the schema
func Open(dsn string) (*SQLiteLedger, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteLedger{db: db}, nil
}

// NewSQLiteLedger wraps an existing connection. Intended for tests.
func NewSQLiteLedger(db *sqlx.DB) *SQLiteLedger { return &SQLiteLedger{db: db} }

// DB exposes the underlying handle for wiring collaborators that share the store.
func (r *SQLiteLedger) DB() *sqlx.DB { return r.db }

// EnsureSchema creates the tables and indexes if they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS auctions(
  auction_id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  title TEXT NOT NULL,
  starts_at INTEGER NOT NULL,
  ends_at INTEGER NOT NULL,
  timer_started_at INTEGER,
  timer_duration_seconds INTEGER,
  active_item_id TEXT
);

CREATE TABLE IF NOT EXISTS items(
  item_id TEXT PRIMARY KEY,
  auction_id TEXT NOT NULL REFERENCES auctions(auction_id) ON DELETE CASCADE,
  owner_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  min_bid REAL NOT NULL CHECK (min_bid >= 0),
  bid_increment REAL NOT NULL CHECK (bid_increment >= 0),
  sold INTEGER NOT NULL DEFAULT 0,
  closed INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_items_auction ON items(auction_id);

-- one row per item: the winning bid right now
CREATE TABLE IF NOT EXISTS current_bids(
  item_id TEXT PRIMARY KEY REFERENCES items(item_id) ON DELETE CASCADE,
  bid_id TEXT NOT NULL,
  bidder_id TEXT NOT NULL,
  amount REAL NOT NULL,
  created_at INTEGER NOT NULL
);

-- append-only audit log, never replaced
CREATE TABLE IF NOT EXISTS bid_history(
  bid_id TEXT PRIMARY KEY,
  item_id TEXT NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
  bidder_id TEXT NOT NULL,
  amount REAL NOT NULL,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bid_history_item ON bid_history(item_id, created_at);

CREATE TABLE IF NOT EXISTS chat_messages(
  message_id TEXT PRIMARY KEY,
  auction_id TEXT NOT NULL REFERENCES auctions(auction_id) ON DELETE CASCADE,
  author_id TEXT NOT NULL,
  text TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_auction ON chat_messages(auction_id, created_at);

CREATE TABLE IF NOT EXISTS profiles(
  user_id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  wallet_balance REAL NOT NULL DEFAULT 0
);
`
	_, err := db.Exec(schema)
	return err
}

// Timestamps are persisted as unix milliseconds.

type auctionRow struct {
	AuctionID            string         `db:"auction_id"`
	OwnerID              string         `db:"owner_id"`
	Title                string         `db:"title"`
	StartsAt             int64          `db:"starts_at"`
	EndsAt               int64          `db:"ends_at"`
	TimerStartedAt       sql.NullInt64  `db:"timer_started_at"`
	TimerDurationSeconds sql.NullInt64  `db:"timer_duration_seconds"`
	ActiveItemID         sql.NullString `db:"active_item_id"`
}

func (row auctionRow) toModel() model.Auction {
	a := model.Auction{
		AuctionID: row.AuctionID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		StartsAt:  time.UnixMilli(row.StartsAt).UTC(),
		EndsAt:    time.UnixMilli(row.EndsAt).UTC(),
	}
	if row.TimerStartedAt.Valid {
		t := time.UnixMilli(row.TimerStartedAt.Int64).UTC()
		a.TimerStartedAt = &t
	}
	if row.TimerDurationSeconds.Valid {
		d := row.TimerDurationSeconds.Int64
		a.TimerDurationSeconds = &d
	}
	if row.ActiveItemID.Valid && row.ActiveItemID.String != "" {
		id := row.ActiveItemID.String
		a.ActiveItemID = &id
	}
	return a
}

type itemRow struct {
	ItemID       string  `db:"item_id"`
	AuctionID    string  `db:"auction_id"`
	OwnerID      string  `db:"owner_id"`
	Title        string  `db:"title"`
	Description  string  `db:"description"`
	MinBid       float64 `db:"min_bid"`
	BidIncrement float64 `db:"bid_increment"`
	Sold         bool    `db:"sold"`
	Closed       bool    `db:"closed"`
}

func (row itemRow) toModel() model.Item {
	return model.Item{
		ItemID:       row.ItemID,
		AuctionID:    row.AuctionID,
		OwnerID:      row.OwnerID,
		Title:        row.Title,
		Description:  row.Description,
		MinBid:       row.MinBid,
		BidIncrement: row.BidIncrement,
		Sold:         row.Sold,
		Closed:       row.Closed,
	}
}

type bidRow struct {
	BidID     string  `db:"bid_id"`
	ItemID    string  `db:"item_id"`
	BidderID  string  `db:"bidder_id"`
	Amount    float64 `db:"amount"`
	CreatedAt int64   `db:"created_at"`
}

func (row bidRow) toModel() model.Bid {
	return model.Bid{
		BidID:     row.BidID,
		ItemID:    row.ItemID,
		BidderID:  row.BidderID,
		Amount:    row.Amount,
		CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
	}
}

type chatRow struct {
	MessageID string `db:"message_id"`
	AuctionID string `db:"auction_id"`
	AuthorID  string `db:"author_id"`
	Text      string `db:"text"`
	CreatedAt int64  `db:"created_at"`
}

func (row chatRow) toModel() model.ChatMessage {
	return model.ChatMessage{
		MessageID: row.MessageID,
		AuctionID: row.AuctionID,
		AuthorID:  row.AuthorID,
		Text:      row.Text,
		CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
	}
}

// GetAuction returns one auction by id
func (r *SQLiteLedger) GetAuction(auctionID string) (model.Auction, error) {
	var row auctionRow
	err := r.db.Get(&row, `SELECT * FROM auctions WHERE auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return row.toModel(), nil
}

// GetItem returns one item by id
func (r *SQLiteLedger) GetItem(itemID string) (model.Item, error) {
	var row itemRow
	err := r.db.Get(&row, `SELECT * FROM items WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return row.toModel(), nil
}

// ListItems returns the full item catalog for an auction
func (r *SQLiteLedger) ListItems(auctionID string) ([]model.Item, error) {
	var rows []itemRow
	if err := r.db.Select(&rows, `SELECT * FROM items WHERE auction_id = ? ORDER BY item_id`, auctionID); err != nil {
		return nil, fmt.Errorf("list items for auction %s: %w", auctionID, err)
	}
	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// GetCurrentBid returns the winning bid right now for an item
func (r *SQLiteLedger) GetCurrentBid(itemID string) (model.Bid, error) {
	var row bidRow
	err := r.db.Get(&row, `SELECT * FROM current_bids WHERE item_id = ?`, itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get current bid for item %s: %w", itemID, auctionerrors.ErrNoCurrentBid)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get current bid for item %s: %w", itemID, err)
	}
	return row.toModel(), nil
}

// CommitBid performs the conditional replace of the current bid plus the
// history append, and the anti-sniping timer restart when ext is non-nil, as
// one transaction. It fails with ErrItemNotActive when the item is no longer
// the auction's open active item, and with ErrBidConflict when the current
// bid is no longer the one identified by prevBidID.
func (r *SQLiteLedger) CommitBid(bid model.Bid, prevBidID string, ext *model.TimerExtension) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, err)
	}
	defer func() { _ = tx.Rollback() }()

	// re-check at commit time: a close that raced the bid wins
	var open int
	err = tx.Get(&open, `
		SELECT 1 FROM auctions a
		JOIN items i ON i.auction_id = a.auction_id
		WHERE i.item_id = ? AND a.active_item_id = i.item_id AND i.closed = 0
	`, bid.ItemID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotActive)
	}
	if err != nil {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, err)
	}

	var res sql.Result
	if prevBidID == "" {
		// first bid: wins only if no row appeared since the read
		res, err = tx.Exec(`
			INSERT INTO current_bids(item_id, bid_id, bidder_id, amount, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(item_id) DO NOTHING
		`, bid.ItemID, bid.BidID, bid.BidderID, bid.Amount, bid.CreatedAt.UnixMilli())
	} else {
		res, err = tx.Exec(`
			UPDATE current_bids
			SET bid_id = ?, bidder_id = ?, amount = ?, created_at = ?
			WHERE item_id = ? AND bid_id = ?
		`, bid.BidID, bid.BidderID, bid.Amount, bid.CreatedAt.UnixMilli(), bid.ItemID, prevBidID)
	}
	if err != nil {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, auctionerrors.ErrBidConflict)
	}

	if _, err = tx.Exec(`
		INSERT INTO bid_history(bid_id, item_id, bidder_id, amount, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, bid.BidID, bid.ItemID, bid.BidderID, bid.Amount, bid.CreatedAt.UnixMilli()); err != nil {
		return fmt.Errorf("append bid history for item %s: %w", bid.ItemID, err)
	}

	if ext != nil {
		// the restart only ever pushes the deadline out: a later deadline
		// written since the bidder read the clock is kept
		deadline := ext.StartedAt.UnixMilli() + ext.DurationSeconds*1000
		if _, err = tx.Exec(`
			UPDATE auctions SET timer_started_at = ?, timer_duration_seconds = ?
			WHERE auction_id = (SELECT auction_id FROM items WHERE item_id = ?)
			  AND COALESCE(timer_started_at + timer_duration_seconds * 1000, 0) < ?
		`, ext.StartedAt.UnixMilli(), ext.DurationSeconds, bid.ItemID, deadline); err != nil {
			return fmt.Errorf("extend timer for item %s: %w", bid.ItemID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit bid for item %s: %w", bid.ItemID, err)
	}
	return nil
}

// ListBidHistory returns every accepted bid for an item, oldest first
func (r *SQLiteLedger) ListBidHistory(itemID string) ([]model.Bid, error) {
	var rows []bidRow
	err := r.db.Select(&rows, `
		SELECT * FROM bid_history WHERE item_id = ? ORDER BY created_at, bid_id
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list bid history for item %s: %w", itemID, err)
	}
	bids := make([]model.Bid, 0, len(rows))
	for _, row := range rows {
		bids = append(bids, row.toModel())
	}
	return bids, nil
}

// ActivateItem sets the auction's active-item reference and starts the
// countdown. The guarded update makes concurrent activations race safely:
// the loser sees zero affected rows and fails with ErrActiveItemConflict.
func (r *SQLiteLedger) ActivateItem(auctionID, itemID string, startedAt time.Time, durationSeconds int64) error {
	res, err := r.db.Exec(`
		UPDATE auctions
		SET active_item_id = ?, timer_started_at = ?, timer_duration_seconds = ?
		WHERE auction_id = ? AND active_item_id IS NULL
	`, itemID, startedAt.UnixMilli(), durationSeconds, auctionID)
	if err != nil {
		return fmt.Errorf("activate item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("activate item %s: %w", itemID, auctionerrors.ErrActiveItemConflict)
	}
	return nil
}

// CloseActiveItem marks the item terminal and clears the auction's active-item
// reference and timer in one transaction. ErrAlreadyClosed reports a racing
// close that got there first.
func (r *SQLiteLedger) CloseActiveItem(auctionID, itemID string, sold bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("close item %s: %w", itemID, err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE items SET closed = 1, sold = ? WHERE item_id = ? AND closed = 0`, sold, itemID)
	if err != nil {
		return fmt.Errorf("close item %s: %w", itemID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("close item %s: %w", itemID, auctionerrors.ErrAlreadyClosed)
	}

	if _, err = tx.Exec(`
		UPDATE auctions
		SET active_item_id = NULL, timer_started_at = NULL, timer_duration_seconds = NULL
		WHERE auction_id = ? AND active_item_id = ?
	`, auctionID, itemID); err != nil {
		return fmt.Errorf("clear active item for auction %s: %w", auctionID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("close item %s: %w", itemID, err)
	}
	return nil
}

// SetTimer is an absolute restart of the countdown, not a delta add
func (r *SQLiteLedger) SetTimer(auctionID string, startedAt time.Time, durationSeconds int64) error {
	res, err := r.db.Exec(`
		UPDATE auctions SET timer_started_at = ?, timer_duration_seconds = ?
		WHERE auction_id = ?
	`, startedAt.UnixMilli(), durationSeconds, auctionID)
	if err != nil {
		return fmt.Errorf("set timer for auction %s: %w", auctionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("set timer for auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

// AppendMessage appends one chat message. Messages are never edited.
func (r *SQLiteLedger) AppendMessage(msg model.ChatMessage) error {
	_, err := r.db.Exec(`
		INSERT INTO chat_messages(message_id, auction_id, author_id, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, msg.MessageID, msg.AuctionID, msg.AuthorID, msg.Text, msg.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("append chat message for auction %s: %w", msg.AuctionID, err)
	}
	return nil
}

// RecentMessages returns the newest limit messages in ascending order
func (r *SQLiteLedger) RecentMessages(auctionID string, limit int) ([]model.ChatMessage, error) {
	msgs, err := recentMessages(r.db, auctionID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent chat messages for auction %s: %w", auctionID, err)
	}
	return msgs, nil
}

// queryer covers both *sqlx.DB and *sqlx.Tx so snapshot reads share the code.
type queryer interface {
	Select(dest interface{}, query string, args ...interface{}) error
}

func recentMessages(q queryer, auctionID string, limit int) ([]model.ChatMessage, error) {
	var rows []chatRow
	err := q.Select(&rows, `
		SELECT * FROM chat_messages
		WHERE auction_id = ?
		ORDER BY created_at DESC, message_id DESC
		LIMIT ?
	`, auctionID, limit)
	if err != nil {
		return nil, err
	}
	// newest-first window flipped back to chronological order
	msgs := make([]model.ChatMessage, len(rows))
	for i, row := range rows {
		msgs[len(rows)-1-i] = row.toModel()
	}
	return msgs, nil
}

// Snapshot reads the auction, its catalog, the current bids and a bounded chat
// window inside one transaction so the assembled view is internally consistent.
func (r *SQLiteLedger) Snapshot(auctionID string, chatLimit int) (SnapshotRows, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}
	defer func() { _ = tx.Rollback() }()

	var aRow auctionRow
	err = tx.Get(&aRow, `SELECT * FROM auctions WHERE auction_id = ?`, auctionID)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}

	var iRows []itemRow
	if err = tx.Select(&iRows, `SELECT * FROM items WHERE auction_id = ? ORDER BY item_id`, auctionID); err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}

	var bRows []bidRow
	if err = tx.Select(&bRows, `
		SELECT cb.* FROM current_bids cb
		JOIN items i ON i.item_id = cb.item_id
		WHERE i.auction_id = ?
	`, auctionID); err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}

	chat, err := recentMessages(tx, auctionID, chatLimit)
	if err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}

	snap := SnapshotRows{
		Auction:     aRow.toModel(),
		Items:       make([]model.Item, 0, len(iRows)),
		CurrentBids: make(map[string]model.Bid, len(bRows)),
		Chat:        chat,
	}
	for _, row := range iRows {
		snap.Items = append(snap.Items, row.toModel())
	}
	for _, row := range bRows {
		snap.CurrentBids[row.ItemID] = row.toModel()
	}

	if err = tx.Commit(); err != nil {
		return SnapshotRows{}, fmt.Errorf("snapshot auction %s: %w", auctionID, err)
	}
	return snap, nil
}

// ResetAuction wipes all derived auction state while preserving the auction and
// item catalog rows. The whole wipe is one transaction: a failure anywhere
// rolls everything back.
func (r *SQLiteLedger) ResetAuction(auctionID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("reset auction %s: %w", auctionID, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err = resetInTx(tx, auctionID); err != nil {
		return fmt.Errorf("reset auction %s: %w", auctionID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("reset auction %s: %w", auctionID, err)
	}
	return nil
}

func resetInTx(tx *sqlx.Tx, auctionID string) error {
	steps := []string{
		`DELETE FROM bid_history WHERE item_id IN (SELECT item_id FROM items WHERE auction_id = ?)`,
		`DELETE FROM chat_messages WHERE auction_id = ?`,
		`DELETE FROM current_bids WHERE item_id IN (SELECT item_id FROM items WHERE auction_id = ?)`,
		`UPDATE items SET sold = 0, closed = 0 WHERE auction_id = ?`,
		`UPDATE auctions SET timer_started_at = NULL, timer_duration_seconds = NULL, active_item_id = NULL WHERE auction_id = ?`,
	}
	for _, stmt := range steps {
		if _, err := tx.Exec(stmt, auctionID); err != nil {
			return err
		}
	}
	return nil
}

// InsertAuction adds an auction row. Used by seeding and tests.
func (r *SQLiteLedger) InsertAuction(a model.Auction) error {
	_, err := r.db.Exec(`
		INSERT INTO auctions(auction_id, owner_id, title, starts_at, ends_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.AuctionID, a.OwnerID, a.Title, a.StartsAt.UnixMilli(), a.EndsAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert auction %s: %w", a.AuctionID, err)
	}
	return nil
}

// InsertItem adds an item row. Used by seeding and tests.
func (r *SQLiteLedger) InsertItem(i model.Item) error {
	_, err := r.db.Exec(`
		INSERT INTO items(item_id, auction_id, owner_id, title, description, min_bid, bid_increment, sold, closed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, i.ItemID, i.AuctionID, i.OwnerID, i.Title, i.Description, i.MinBid, i.BidIncrement, i.Sold, i.Closed)
	if err != nil {
		return fmt.Errorf("insert item %s: %w", i.ItemID, err)
	}
	return nil
}
