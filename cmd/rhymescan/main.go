// Command rhymescan is the CLI tool for rhymekit.
// It analyzes lyric text for rhyme clusters and repeated multisyllable
// patterns, with optional result caching and LLM-backed word placement.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/versemetrics/rhymekit/internal/logging"
	"github.com/versemetrics/rhymekit/internal/scheme"
	"github.com/versemetrics/rhymekit/internal/store"
	"github.com/versemetrics/rhymekit/pkg/assist"
	"github.com/versemetrics/rhymekit/pkg/lyrics"
	"github.com/versemetrics/rhymekit/pkg/prondict"
	"github.com/versemetrics/rhymekit/pkg/rhyme"
)

const version = "0.1.0"

// CLI defines the command-line interface for rhymescan.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `name:"log-format" help:"Log output format (text, json)" default:"text" enum:"text,json"`

	Analyze AnalyzeCmd `cmd:"" help:"Analyze lyric text for rhyme clusters"`
	Cache   CacheGroup `cmd:"" help:"Cached analysis operations"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// AnalyzeCmd runs a full rhyme analysis over a lyric file or stdin.
type AnalyzeCmd struct {
	Path     string `arg:"" optional:"" help:"Lyric text file to analyze (default: stdin)" type:"existingfile"`
	Mode     string `help:"Analysis mode" default:"english" enum:"english,multilingual"`
	Patterns bool   `help:"Detect repeated multisyllable patterns"`
	Window   int    `help:"Syllable window size for pattern detection" default:"2"`
	Extended bool   `help:"Include per-word span records in the result"`
	Dict     string `help:"CMUdict-format pronunciation file" type:"existingfile"`
	Cache    string `help:"SQLite cache DSN (empty disables caching)"`
	SchemeDB string `name:"scheme-db" help:"Romanization symbol database" type:"existingfile"`
	Scheme   string `help:"Romanization scheme name" default:"itrans"`

	AssistModel string `name:"assist-model" help:"OpenRouter model for placing unresolved words (requires OPENROUTER_API_KEY)"`

	JSON bool `help:"Output as JSON"`
}

func (c *AnalyzeCmd) Run() error {
	text, err := readInput(c.Path)
	if err != nil {
		return err
	}

	cfg := rhyme.Config{
		Mode:       parseMode(c.Mode),
		WindowSize: c.Window,
	}

	if c.Dict != "" {
		dict, err := prondict.LoadFile(c.Dict)
		if err != nil {
			return fmt.Errorf("failed to load pronunciation dictionary: %w", err)
		}
		cfg.Dictionary = dict
	}

	if c.SchemeDB != "" {
		engine, err := scheme.Open(c.SchemeDB)
		if err != nil {
			return fmt.Errorf("failed to open scheme database: %w", err)
		}
		cfg.Engine = engine
		cfg.Scheme = c.Scheme
	}

	opts := lyrics.Options{
		Patterns: c.Patterns,
		Extended: c.Extended,
	}

	if c.Cache != "" {
		cache, err := store.NewWithDSN(c.Cache)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		defer cache.Close()
		opts.Cache = cache
	}

	if c.AssistModel != "" {
		opts.Assist = assist.NewService(assist.Config{
			Provider: assist.ProviderOpenRouter,
			APIKey:   os.Getenv("OPENROUTER_API_KEY"),
			Model:    c.AssistModel,
		})
	}

	analyzer, err := lyrics.NewAnalyzer(rhyme.New(cfg), opts)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(context.Background(), text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if c.JSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printResult(result)
	return nil
}

// printResult renders an analysis in the human-readable terminal format.
func printResult(r *lyrics.Result) {
	fmt.Println("Analysis Summary")
	fmt.Println("----------------")
	fmt.Printf("  Mode:         %s\n", r.Mode)
	fmt.Printf("  Words:        %d\n", r.WordCount)
	fmt.Printf("  Clusters:     %d\n", len(r.Clusters))
	fmt.Printf("  From cache:   %v\n", r.Cached)
	if len(r.ContentHash) >= 16 {
		fmt.Printf("  Content hash: %s\n", r.ContentHash[:16]+"...")
	}

	if len(r.Clusters) > 0 {
		fmt.Println()
		fmt.Println("Rhyme Clusters")
		fmt.Println("--------------")
		for i, cl := range r.Clusters {
			fmt.Printf("  %d. %-14s %s\n", i+1, cl.Key, strings.Join(cl.Words, ", "))
		}
	}

	if len(r.Patterns) > 0 {
		fmt.Println()
		fmt.Println("Multisyllable Patterns")
		fmt.Println("----------------------")
		for _, p := range r.Patterns {
			fmt.Printf("  %s  [%s]  %d occurrences\n", p.ID, p.Phonemes.Join(" "), len(p.Occurrences))
		}
	}

	if len(r.Records) > 0 {
		fmt.Println()
		fmt.Println("Extended Records")
		fmt.Println("----------------")
		for _, rec := range r.Records {
			kind := "tail"
			if rec.Multisyllable {
				kind = "multi"
			}
			fmt.Printf("  %-16s %-6s %d words\n", rec.ClusterID, kind, len(rec.Words))
		}
	}
}

// CacheGroup contains cached analysis operations.
type CacheGroup struct {
	Info  CacheInfoCmd  `cmd:"" help:"Show cache entry count and payload size"`
	Clear CacheClearCmd `cmd:"" help:"Delete all cached analyses"`
}

// CacheInfoCmd reports size statistics for an analysis cache.
type CacheInfoCmd struct {
	Cache string `help:"SQLite cache DSN" required:""`
}

func (c *CacheInfoCmd) Run() error {
	st, err := store.NewWithDSN(c.Cache)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer st.Close()

	info, err := st.Info()
	if err != nil {
		return fmt.Errorf("failed to read cache info: %w", err)
	}

	fmt.Printf("Cache: %s\n", c.Cache)
	fmt.Printf("  Entries:       %d\n", info.Entries)
	fmt.Printf("  Payload bytes: %d\n", info.PayloadBytes)
	return nil
}

// CacheClearCmd deletes every cached analysis.
type CacheClearCmd struct {
	Cache string `help:"SQLite cache DSN" required:""`
}

func (c *CacheClearCmd) Run() error {
	st, err := store.NewWithDSN(c.Cache)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer st.Close()

	count, err := st.Count()
	if err != nil {
		return fmt.Errorf("failed to count cache entries: %w", err)
	}
	if err := st.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Cleared %d cached analyses\n", count)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("rhymescan version %s\n", version)
	return nil
}

// Helper functions

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func parseMode(s string) rhyme.Mode {
	if s == "multilingual" {
		return rhyme.Multilingual
	}
	return rhyme.EnglishOnly
}

func parseLogLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("rhymescan"),
		kong.Description("Rhymekit - phoneme-level rhyme analysis for song lyrics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(parseLogLevel(CLI.LogLevel), parseLogFormat(CLI.LogFormat))
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
