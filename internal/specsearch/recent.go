package specsearch

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// maxRecent caps the recent-search history.
const maxRecent = 5

// RecentStore persists the recent-search history to a local SQLite file.
type RecentStore struct {
	db *sql.DB
}

// OpenRecentStore opens the history database at path, creating the schema if
// needed and configuring WAL mode.
func OpenRecentStore(path string) (*RecentStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "specsearch: open recent db")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "specsearch: exec %s", pragma)
		}
	}

	const migration = `
CREATE TABLE IF NOT EXISTS recent_searches (
	query       TEXT PRIMARY KEY,
	seq         INTEGER NOT NULL,
	searched_at DATETIME NOT NULL
);`
	if _, err := db.Exec(migration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "specsearch: migrate recent db")
	}

	return &RecentStore{db: db}, nil
}

// Close closes the database.
func (s *RecentStore) Close() error {
	return s.db.Close()
}

// Add records a search. Repeating a query moves it to the front; only the
// five most recent distinct queries are kept. Blank queries are ignored.
func (s *RecentStore) Add(ctx context.Context, q string) error {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recent_searches (query, seq, searched_at)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM recent_searches), ?)
		ON CONFLICT(query) DO UPDATE SET
			seq = (SELECT COALESCE(MAX(seq), 0) + 1 FROM recent_searches),
			searched_at = excluded.searched_at`,
		q, time.Now().UTC())
	if err != nil {
		return eris.Wrap(err, "specsearch: record search")
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM recent_searches WHERE query NOT IN (
			SELECT query FROM recent_searches
			ORDER BY seq DESC
			LIMIT ?
		)`, maxRecent)
	return eris.Wrap(err, "specsearch: trim recent searches")
}

// Recent returns the saved queries, most recent first.
func (s *RecentStore) Recent(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT query FROM recent_searches
		ORDER BY seq DESC
		LIMIT ?`, maxRecent)
	if err != nil {
		return nil, eris.Wrap(err, "specsearch: list recent searches")
	}
	defer rows.Close()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, eris.Wrap(err, "specsearch: scan recent search")
		}
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
