package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/jergrif73/whale-watcher/internal/model"
	"github.com/jergrif73/whale-watcher/internal/portfolio"
)

// SQLiteRecorder writes the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the audit database and runs
// migrations.
func NewSQLiteRecorder(dbPath string, logger zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: logger.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	r.log.Info().Str("path", dbPath).Msg("audit recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recommendations (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			ticker        TEXT NOT NULL,
			category      TEXT,
			signal_label  TEXT,
			action        TEXT,
			priority      INTEGER,
			risk_score    INTEGER,
			critical      INTEGER,
			reasoning     TEXT,
			current_price REAL,
			rsi           REAL,
			macd_hist     REAL,
			trend         TEXT,
			volume_ratio  REAL,
			gain_loss_pct REAL,
			drawdown_pct  REAL,
			holding_days  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recs_ticker_ts ON recommendations(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS summaries (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			total_invested  REAL,
			total_value     REAL,
			total_return    REAL,
			benchmark_alpha REAL,
			tax_alerts      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_ts ON summaries(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

// RecordRecommendation appends one per-asset evaluation row.
func (r *SQLiteRecorder) RecordRecommendation(rec *model.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	critical := 0
	if rec.Critical {
		critical = 1
	}
	_, err := r.db.Exec(`INSERT INTO recommendations
		(timestamp, ticker, category, signal_label, action, priority, risk_score,
		 critical, reasoning, current_price, rsi, macd_hist, trend, volume_ratio,
		 gain_loss_pct, drawdown_pct, holding_days)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.EvaluatedAt.Unix(), rec.Ticker, string(rec.Category), rec.SignalLabel,
		string(rec.Action), rec.Priority, rec.RiskScore, critical,
		strings.Join(rec.Reasoning, "; "),
		rec.Indicators.CurrentPrice, rec.Indicators.RSI, rec.Indicators.MACDHist,
		string(rec.Indicators.Trend), rec.Indicators.VolumeRatio,
		rec.Valuation.GainLossPct, rec.Valuation.DrawdownPct, rec.Valuation.HoldingDays,
	)
	return err
}

// RecordSummary appends one account-level summary row.
func (r *SQLiteRecorder) RecordSummary(sum *portfolio.Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts := 0
	for _, lot := range sum.TaxLots {
		if lot.Alert != "" {
			alerts++
		}
	}
	_, err := r.db.Exec(`INSERT INTO summaries
		(timestamp, total_invested, total_value, total_return, benchmark_alpha, tax_alerts)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), sum.TotalInvested, sum.TotalValue, sum.TotalReturnPct,
		sum.BenchmarkAlpha, alerts,
	)
	return err
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing audit recorder")
	return r.db.Close()
}
