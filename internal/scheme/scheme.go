// Package scheme converts romanized words to Devanagari using symbol
// tables loaded from a SQLite scheme database.
//
// The database holds one row per mapping, so alternative romanization
// schemes can live side by side in one file:
//
//	CREATE TABLE symbols (scheme TEXT, pattern TEXT, value TEXT);
//
// Patterns are matched greedily, longest first, the way Varnam-style
// transliterators walk their symbol tables. Matching is case-sensitive:
// ITRANS-family schemes use letter case to distinguish vowel length and
// retroflex consonants.
package scheme

import (
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/asg017/sqlite-vec-go-bindings/ncruces"
	_ "github.com/ncruces/go-sqlite3/driver"

	"github.com/versemetrics/rhymekit/pkg/hinglish"
)

// DefaultScheme is the scheme name looked up when the caller passes "".
const DefaultScheme = "itrans"

// table holds one scheme's patterns after loading.
type table struct {
	symbols map[string]string
	maxLen  int // longest pattern, in runes
}

// Engine converts romanized words to Devanagari. All symbol tables are
// loaded at construction and immutable afterwards, so an Engine is safe
// for concurrent use.
type Engine struct {
	tables map[string]*table
}

// Open loads every scheme from the symbol database at path. The database
// connection is closed before Open returns; the Engine works from memory.
func Open(path string) (*Engine, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("scheme: failed to open symbol database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT scheme, pattern, value FROM symbols`)
	if err != nil {
		return nil, fmt.Errorf("scheme: failed to read symbols: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]*table)
	for rows.Next() {
		var schemeName, pattern, value string
		if err := rows.Scan(&schemeName, &pattern, &value); err != nil {
			return nil, fmt.Errorf("scheme: failed to scan symbol row: %w", err)
		}
		if pattern == "" {
			continue
		}
		tbl, ok := tables[schemeName]
		if !ok {
			tbl = &table{symbols: make(map[string]string)}
			tables[schemeName] = tbl
		}
		tbl.symbols[pattern] = value
		if n := len([]rune(pattern)); n > tbl.maxLen {
			tbl.maxLen = n
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scheme: failed to read symbols: %w", err)
	}

	return &Engine{tables: tables}, nil
}

// Schemes lists the loaded scheme names in sorted order.
func (e *Engine) Schemes() []string {
	names := make([]string, 0, len(e.tables))
	for name := range e.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToDevanagari converts one romanized word through the named scheme by
// greedy longest-match over its symbol table. A rune with no matching
// pattern fails the whole conversion: a half-converted word is worse than
// letting the caller fall back.
func (e *Engine) ToDevanagari(word, scheme string) (string, error) {
	if scheme == "" {
		scheme = DefaultScheme
	}

	tbl, ok := e.tables[scheme]
	if !ok {
		return "", fmt.Errorf("scheme: unknown scheme %q", scheme)
	}

	runes := []rune(word)
	var out []rune
	for i := 0; i < len(runes); {
		matched := false
		limit := tbl.maxLen
		if rest := len(runes) - i; rest < limit {
			limit = rest
		}
		for n := limit; n >= 1; n-- {
			if value, ok := tbl.symbols[string(runes[i:i+n])]; ok {
				out = append(out, []rune(value)...)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("scheme: %s has no symbol for %q", scheme, string(runes[i]))
		}
	}
	return string(out), nil
}

// Compile-time interface check
var _ hinglish.Engine = (*Engine)(nil)
