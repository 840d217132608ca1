package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	_ "github.com/ncruces/go-sqlite3/driver"
)

// CacheStore is the SQLite-backed analysis cache.
// Thread-safe for concurrent analyzer calls.
type CacheStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// schema defines the analysis cache table.
// Composite primary key (content_hash, detector_mode) so that re-analyzing
// the same text under another mode never shadows an earlier result.
const schema = `
CREATE TABLE IF NOT EXISTS analyses (
    content_hash TEXT NOT NULL,
    detector_mode TEXT NOT NULL,
    clusters TEXT NOT NULL,
    word_count INTEGER DEFAULT 0,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (content_hash, detector_mode)
);

CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);
`

// New creates a new in-memory cache store.
func New() (*CacheStore, error) {
	return NewWithDSN(":memory:")
}

// NewWithDSN creates a cache store with a specific data source name.
// Use ":memory:" for in-memory or a file path for persistent storage.
func NewWithDSN(dsn string) (*CacheStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: failed to create schema: %w", err)
	}

	return &CacheStore{db: db}, nil
}

// Get returns the cached analysis for a content hash and detector mode.
// A cache miss returns (nil, nil), not an error.
func (s *CacheStore) Get(contentHash, mode string) (*CachedAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := &CachedAnalysis{ContentHash: contentHash, DetectorMode: mode}
	var clustersJSON string
	err := s.db.QueryRow(`
		SELECT clusters, word_count, created_at FROM analyses
		WHERE content_hash = ? AND detector_mode = ?
	`, contentHash, mode).Scan(&clustersJSON, &a.WordCount, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(clustersJSON), &a.Clusters); err != nil {
		return nil, fmt.Errorf("store: failed to decode cached clusters: %w", err)
	}
	return a, nil
}

// Put inserts or replaces the cached analysis for its hash and mode.
func (s *CacheStore) Put(a *CachedAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	clustersJSON, err := json.Marshal(a.Clusters)
	if err != nil {
		return fmt.Errorf("store: failed to encode clusters: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO analyses (content_hash, detector_mode, clusters, word_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, a.ContentHash, a.DetectorMode, string(clustersJSON), a.WordCount, a.CreatedAt)
	return err
}

// Delete removes one cached analysis. Deleting a missing entry is not an
// error.
func (s *CacheStore) Delete(contentHash, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		DELETE FROM analyses WHERE content_hash = ? AND detector_mode = ?
	`, contentHash, mode)
	return err
}

// Clear removes every cached analysis.
func (s *CacheStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM analyses`)
	return err
}

// Count returns the number of cached analyses.
func (s *CacheStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n)
	return n, err
}

// Info reports entry count and total serialized payload size.
func (s *CacheStore) Info() (CacheInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var info CacheInfo
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(LENGTH(clusters)), 0) FROM analyses
	`).Scan(&info.Entries, &info.PayloadBytes)
	return info, err
}

// Close closes the database connection.
func (s *CacheStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Compile-time interface check
var _ Cacher = (*CacheStore)(nil)
