// Package store persists graded picks to Postgres so historical runs can
// be queried and re-graded runs keep their audit trail.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

// Store wraps the picks ledger database.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS picks (
	id              TEXT PRIMARY KEY,
	pick_date       DATE NOT NULL,
	league          TEXT NOT NULL DEFAULT '',
	matchup         TEXT NOT NULL DEFAULT '',
	segment         TEXT NOT NULL,
	bet_type        TEXT NOT NULL,
	team            TEXT NOT NULL DEFAULT '',
	short_code      TEXT NOT NULL DEFAULT '',
	resolved        BOOLEAN NOT NULL DEFAULT FALSE,
	line            DOUBLE PRECISION NOT NULL DEFAULT 0,
	direction       TEXT NOT NULL DEFAULT '',
	odds            INTEGER NOT NULL,
	risk            NUMERIC(18,4) NOT NULL,
	to_win          NUMERIC(18,4) NOT NULL,
	status          TEXT NOT NULL,
	pnl             NUMERIC(18,4),
	game_id         TEXT NOT NULL DEFAULT '',
	previous_status TEXT,
	previous_pnl    NUMERIC(18,4),
	source_text     TEXT NOT NULL DEFAULT '',
	grade_reason    TEXT NOT NULL DEFAULT '',
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS picks_date_league_idx ON picks (pick_date, league);
CREATE INDEX IF NOT EXISTS picks_status_idx ON picks (status);
`

// EnsureSchema creates the picks table and indexes if missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const upsertPick = `
INSERT INTO picks (
	id, pick_date, league, matchup, segment, bet_type, team, short_code,
	resolved, line, direction, odds, risk, to_win, status, pnl, game_id,
	previous_status, previous_pnl, source_text, grade_reason, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8,
	$9, $10, $11, $12, $13, $14, $15, $16, $17,
	$18, $19, $20, $21, NOW()
)
ON CONFLICT (id) DO UPDATE SET
	status = EXCLUDED.status,
	pnl = EXCLUDED.pnl,
	game_id = EXCLUDED.game_id,
	previous_status = EXCLUDED.previous_status,
	previous_pnl = EXCLUDED.previous_pnl,
	grade_reason = EXCLUDED.grade_reason,
	updated_at = NOW()
`

// SavePicks upserts a batch of picks in one transaction. Re-grades update
// the result columns in place; the identity columns never change.
func (s *Store) SavePicks(ctx context.Context, batch []*picks.Pick) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertPick)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, p := range batch {
		var prevStatus sql.NullString
		if p.PreviousStatus != nil {
			prevStatus = sql.NullString{String: p.PreviousStatus.String(), Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			p.ID, p.Date, string(p.League), p.Matchup, p.Segment.String(),
			p.Type.String(), p.Team, p.ShortCode,
			p.Resolved, p.Line, p.Direction.String(), p.Odds,
			p.Risk.String(), p.ToWin.String(), p.Status.String(),
			nullDecimalValue(p.PnL), p.GameID,
			prevStatus, nullDecimalValue(p.PreviousPnL),
			p.SourceText, p.GradeReason,
		)
		if err != nil {
			return fmt.Errorf("upsert pick %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LedgerRow is one aggregate line from the stored ledger.
type LedgerRow struct {
	League string
	Status string
	Count  int
	Net    decimal.Decimal
}

// Summary aggregates stored picks by league and status for a date range.
func (s *Store) Summary(ctx context.Context, from, to time.Time) ([]LedgerRow, error) {
	const q = `
		SELECT league, status, COUNT(*), COALESCE(SUM(pnl), 0)
		FROM picks
		WHERE pick_date >= $1 AND pick_date <= $2
		GROUP BY league, status
		ORDER BY league, status
	`
	rows, err := s.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []LedgerRow
	for rows.Next() {
		var r LedgerRow
		var net string
		if err := rows.Scan(&r.League, &r.Status, &r.Count, &net); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		r.Net, err = decimal.NewFromString(net)
		if err != nil {
			return nil, fmt.Errorf("parse net %q: %w", net, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullDecimalValue(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}
