package ledger

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/jergrif73/whale-watcher/internal/model"
)

// Store is the append-only SQLite trade ledger. Trades are never updated or
// deleted; positions are derived by replay.
type Store struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// Open opens (or creates) the ledger database and runs migrations.
func Open(dbPath string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db, log: logger.With().Str("component", "ledger").Logger()}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.log.Info().Str("path", dbPath).Msg("ledger opened")
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id        TEXT PRIMARY KEY,
			ticker    TEXT NOT NULL,
			action    TEXT NOT NULL CHECK (action IN ('BUY','SELL')),
			amount    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			notes     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ticker_ts ON trades(ticker, timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// Append records one trade. A missing ID is filled in.
func (s *Store) Append(t model.Trade) (model.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO trades (id, ticker, action, amount, timestamp, notes) VALUES (?,?,?,?,?,?)`,
		t.ID, t.Ticker, string(t.Action), t.Amount.String(), t.Timestamp.Unix(), t.Notes,
	)
	if err != nil {
		return model.Trade{}, fmt.Errorf("append trade: %w", err)
	}
	s.log.Debug().Str("ticker", t.Ticker).Str("action", string(t.Action)).
		Str("amount", t.Amount.String()).Msg("trade appended")
	return t, nil
}

// History returns a ticker's trades in timestamp order.
func (s *Store) History(ticker string) ([]model.Trade, error) {
	return s.query(`SELECT id, ticker, action, amount, timestamp, notes
		FROM trades WHERE ticker = ? ORDER BY timestamp`, ticker)
}

// All returns every trade in timestamp order.
func (s *Store) All() ([]model.Trade, error) {
	return s.query(`SELECT id, ticker, action, amount, timestamp, notes
		FROM trades ORDER BY timestamp`)
}

func (s *Store) query(stmt string, args ...any) ([]model.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var trades []model.Trade
	for rows.Next() {
		var t model.Trade
		var action, amount string
		var ts int64
		if err := rows.Scan(&t.ID, &t.Ticker, &action, &amount, &ts, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}
		dec, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		t.Action = model.TradeAction(action)
		t.Amount = dec
		t.Timestamp = time.Unix(ts, 0).UTC()
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.log.Info().Msg("closing ledger")
	return s.db.Close()
}
