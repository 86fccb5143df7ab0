package passage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const markupSchema = `
CREATE TABLE IF NOT EXISTS markup (
	reference TEXT NOT NULL,
	version   TEXT NOT NULL,
	body      TEXT NOT NULL,
	PRIMARY KEY (reference, version)
)`

// Store is a Fetcher that keeps fetched markup in a SQLite database and only
// asks the wrapped Fetcher for references it has not seen. Re-runs against a
// warm store make no network calls. Pages without passage text are passed
// through but never stored, so the next run asks upstream again.
type Store struct {
	db     *sql.DB
	next   Fetcher
	logger *zap.Logger
}

// OpenStore opens (creating if needed) the cache database at path.
func OpenStore(path string, next Fetcher, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening markup cache: %w", err)
	}
	// Prefetch workers write concurrently; a single connection serialises
	// them instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(markupSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating markup cache schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, next: next, logger: logger}, nil
}

// FetchMarkup implements Fetcher.
func (s *Store) FetchMarkup(ctx context.Context, reference, version string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM markup WHERE reference = ? AND version = ?",
		reference, version,
	).Scan(&body)
	switch {
	case err == nil:
		s.logger.Debug("markup cache hit", zap.String("reference", reference), zap.String("version", version))
		return body, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("reading markup cache for %s: %w", reference, err)
	}

	body, err = s.next.FetchMarkup(ctx, reference, version)
	if err != nil {
		return "", err
	}
	if err := HasPassage(body); err != nil {
		s.logger.Warn("not caching markup without passage text",
			zap.String("reference", reference),
			zap.String("version", version),
			zap.Error(err))
		return body, nil
	}
	if _, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO markup (reference, version, body) VALUES (?, ?, ?)",
		reference, version, body,
	); err != nil {
		return "", fmt.Errorf("writing markup cache for %s: %w", reference, err)
	}
	return body, nil
}

// Count returns the number of cached pages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM markup").Scan(&n)
	return n, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
