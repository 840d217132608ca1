// Package store provides SQLite-backed persistence for analysis results.
// Uses ncruces/go-sqlite3/driver which provides a database/sql interface.
package store

import "github.com/versemetrics/rhymekit/pkg/rhyme"

// CachedAnalysis is one stored analysis result, keyed by content hash
// and detector mode. The same lyrics analyzed under different modes are
// distinct entries.
type CachedAnalysis struct {
	ContentHash  string          `json:"contentHash"`
	DetectorMode string          `json:"detectorMode"`
	Clusters     []rhyme.Cluster `json:"clusters"`
	WordCount    int             `json:"wordCount"`
	CreatedAt    int64           `json:"createdAt"`
}

// CacheInfo summarizes cache contents for the CLI's cache subcommands.
type CacheInfo struct {
	Entries      int   `json:"entries"`
	PayloadBytes int64 `json:"payloadBytes"` // total serialized cluster bytes
}

// Cacher defines the interface for analysis-result persistence.
// CacheStore is the sole implementation.
type Cacher interface {
	Get(contentHash, mode string) (*CachedAnalysis, error)
	Put(analysis *CachedAnalysis) error
	Delete(contentHash, mode string) error
	Clear() error
	Count() (int, error)
	Info() (CacheInfo, error)
	Close() error
}
