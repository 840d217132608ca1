package lyrics

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/versemetrics/rhymekit/internal/logging"
	"github.com/versemetrics/rhymekit/internal/store"
	"github.com/versemetrics/rhymekit/pkg/assist"
	"github.com/versemetrics/rhymekit/pkg/rhyme"
)

// Options configures an Analyzer beyond its detector.
type Options struct {
	// Cache persists results keyed by content hash; nil disables caching.
	Cache store.Cacher
	// Assist places words the pronunciation sources missed into existing
	// classes; nil or unconfigured disables the step.
	Assist *assist.Service
	// Patterns adds repeated multisyllable patterns to the result.
	Patterns bool
	// Extended adds per-word span records to the result.
	Extended bool
}

// Result is one full analysis of a lyric text.
type Result struct {
	ContentHash string                `json:"contentHash"`
	Mode        string                `json:"mode"`
	WordCount   int                   `json:"wordCount"`
	Cached      bool                  `json:"cached"`
	Clusters    []rhyme.Cluster       `json:"clusters"`
	Patterns    []rhyme.Pattern       `json:"patterns,omitempty"`
	Records     []rhyme.ClusterRecord `json:"records,omitempty"`
}

// Analyzer runs the rhyme detector over lyric text. Cache and assist
// failures degrade to compute-only with a logged warning; Analyze itself
// fails only on unusable construction.
type Analyzer struct {
	detector *rhyme.Detector
	opts     Options
}

// NewAnalyzer builds an Analyzer around a detector.
func NewAnalyzer(detector *rhyme.Detector, opts Options) (*Analyzer, error) {
	if detector == nil {
		return nil, errors.New("lyrics: detector is required")
	}
	return &Analyzer{detector: detector, opts: opts}, nil
}

// modeID is the cache and output identifier for this analyzer's
// configuration. Pattern-bearing results are cached apart from plain ones.
func (a *Analyzer) modeID() string {
	id := a.detector.Mode().String()
	if a.opts.Patterns {
		id += "+multi"
	}
	return id
}

// ContentHash returns the cache key for a lyric text.
func ContentHash(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Analyze tokenizes text and produces its rhyme clusters, plus patterns and
// span records when configured. The stored cluster partition is reused on a
// cache hit; patterns and records are always computed fresh.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Result, error) {
	start := time.Now()
	words := Tokenize(text)
	result := &Result{
		ContentHash: ContentHash(text),
		Mode:        a.modeID(),
		WordCount:   len(words),
	}

	if a.opts.Cache != nil {
		cached, err := a.opts.Cache.Get(result.ContentHash, result.Mode)
		if err != nil {
			logging.Warn("cache lookup failed", "error", err)
		} else if cached != nil {
			logging.CacheEvent("hit", result.ContentHash, "mode", result.Mode)
			result.Clusters = cached.Clusters
			result.Cached = true
		}
	}

	if !result.Cached {
		result.Clusters = a.detector.FindClusters(words)
		a.assistPlacement(ctx, words, result.Clusters)
		a.storeResult(result)
	}

	if a.opts.Patterns {
		result.Patterns = a.detector.FindPatterns(words)
	}
	if a.opts.Extended {
		result.Records = a.detector.FindClusterRecords(words)
	}

	logging.AnalysisRun(result.Mode, result.WordCount, len(result.Clusters),
		result.Cached, time.Since(start))
	return result, nil
}

// assistPlacement asks the assist service to place unresolved words into the
// clusters just found, appending accepted placements in place.
func (a *Analyzer) assistPlacement(ctx context.Context, words []string, clusters []rhyme.Cluster) {
	if a.opts.Assist == nil || !a.opts.Assist.IsConfigured() || len(clusters) == 0 {
		return
	}

	oov := unresolvedWords(a.detector, words)
	if len(oov) == 0 {
		return
	}

	classes := make([]assist.Class, len(clusters))
	byID := make(map[string]int, len(clusters))
	for i, c := range clusters {
		classes[i] = assist.Class{ID: c.Key, Members: c.Words}
		byID[c.Key] = i
	}

	placements, err := a.opts.Assist.ClassifyOOV(ctx, oov, classes)
	if err != nil {
		logging.AssistError("classify_oov", err)
		return
	}

	// Append in input order so repeated runs agree.
	for _, word := range oov {
		id, ok := placements[word]
		if !ok {
			continue
		}
		i, ok := byID[id]
		if !ok {
			continue
		}
		clusters[i].Words = append(clusters[i].Words, word)
	}
}

// unresolvedWords collects the distinct words no pronunciation source could
// place, in first-appearance order.
func unresolvedWords(d *rhyme.Detector, words []string) []string {
	var oov []string
	seen := make(map[string]bool)
	for _, word := range words {
		res := d.Resolve(word)
		if res.Outcome != rhyme.Unresolved {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(word))
		if seen[key] {
			continue
		}
		seen[key] = true
		oov = append(oov, word)
	}
	return oov
}

// storeResult writes the cluster partition back to the cache.
func (a *Analyzer) storeResult(result *Result) {
	if a.opts.Cache == nil {
		return
	}
	err := a.opts.Cache.Put(&store.CachedAnalysis{
		ContentHash:  result.ContentHash,
		DetectorMode: result.Mode,
		Clusters:     result.Clusters,
		WordCount:    result.WordCount,
	})
	if err != nil {
		logging.Warn("cache store failed", "error", err)
		return
	}
	logging.CacheEvent("store", result.ContentHash, "mode", result.Mode)
}
