package rankings

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS rankings (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT    NOT NULL,
	level     INTEGER NOT NULL,
	lines     INTEGER NOT NULL,
	score     INTEGER NOT NULL,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS rankings_score ON rankings (score DESC, played_at ASC);
`

// SQLiteStore keeps the leaderboard in a SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("rankings database open")
	return &SQLiteStore{db: db}, nil
}

// Add inserts e and prunes everything outside the top Limit in one transaction.
func (s *SQLiteStore) Add(ctx context.Context, e Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rankings (name, level, lines, score, played_at) VALUES (?, ?, ?, ?, ?)`,
		e.Name, e.Level, e.Lines, e.Score, e.PlayedAt.UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert ranking: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM rankings WHERE id NOT IN (
			SELECT id FROM rankings
			ORDER BY score DESC, played_at ASC, id ASC
			LIMIT ?
		)`, Limit,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prune rankings: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteStore) Top(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, level, lines, score, played_at
		FROM rankings
		ORDER BY score DESC, played_at ASC, id ASC
		LIMIT ?`, Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, Limit)
	for rows.Next() {
		var e Entry
		var playedAt int64
		if err := rows.Scan(&e.Name, &e.Level, &e.Lines, &e.Score, &playedAt); err != nil {
			return nil, err
		}
		e.PlayedAt = time.UnixMilli(playedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
