// Package sqlite loads already-clean daily price history for the scan
// binary. Read-only: the engine persists nothing across runs.
package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pairs-enginev1/internal/model"
)

// Reader provides read-only access to the daily price database.
type Reader struct {
	db *sql.DB
}

// NewReader opens a SQLite connection for reading.
func NewReader(dbPath string) (*Reader, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open reader: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)

	log.Printf("[sqlite-reader] opened %s", dbPath)
	return &Reader{db: db}, nil
}

// ReadPairBars joins the daily closes of two symbols on timestamp and
// returns the aligned bars ordered by timestamp ascending. Days where either
// symbol has no close are absent from the join, which preserves the aligned
// equal-length invariant the engine expects.
func (r *Reader) ReadPairBars(symbolA, symbolB string, afterTS int64) ([]model.PairBar, error) {
	rows, err := r.db.Query(`
		SELECT a.ts, a.close, b.close
		FROM daily_prices a
		JOIN daily_prices b ON a.ts = b.ts
		WHERE a.symbol = ? AND b.symbol = ? AND a.ts > ?
		ORDER BY a.ts ASC
	`, symbolA, symbolB, afterTS)
	if err != nil {
		return nil, fmt.Errorf("sqlite query daily_prices: %w", err)
	}
	defer rows.Close()

	var bars []model.PairBar
	for rows.Next() {
		var b model.PairBar
		var tsUnix int64
		if err := rows.Scan(&tsUnix, &b.PriceA, &b.PriceB); err != nil {
			return nil, fmt.Errorf("sqlite scan daily_prices: %w", err)
		}
		b.TS = time.Unix(tsUnix, 0).UTC()
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// Close releases the database handle.
func (r *Reader) Close() error {
	return r.db.Close()
}
