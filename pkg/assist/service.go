// Package assist provides an optional LLM collaborator for words the
// pronunciation sources cannot place. It assigns out-of-vocabulary words to
// existing rhyme classes and guesses pronunciations for unknown words.
//
// Only OpenRouter-compatible chat-completion endpoints are supported; the
// base URL is overridable so tests can point the client at a local server.
package assist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// Provider type for LLM providers.
type Provider string

// ProviderOpenRouter is the only supported provider.
const ProviderOpenRouter Provider = "openrouter"

// DefaultBaseURL is the public OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Config holds assist service settings.
type Config struct {
	Provider Provider `json:"provider"`
	APIKey   string   `json:"apiKey"`
	Model    string   `json:"model"`
	BaseURL  string   `json:"baseUrl"`
}

// Class is one existing rhyme class offered to the model as a placement
// target.
type Class struct {
	ID      string
	Members []string
}

// Service handles out-of-vocabulary word classification and pronunciation
// guessing.
type Service struct {
	config Config
	client *http.Client
}

// NewService creates an assist service. An empty Provider defaults to
// OpenRouter and an empty BaseURL to the public endpoint.
func NewService(config Config) *Service {
	if config.Provider == "" {
		config.Provider = ProviderOpenRouter
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	return &Service{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// IsConfigured checks if the current provider has valid credentials.
func (s *Service) IsConfigured() bool {
	switch s.config.Provider {
	case ProviderOpenRouter:
		return s.config.APIKey != ""
	default:
		return false
	}
}

// ClassifyOOV asks the model to place each word into one of the existing
// rhyme classes. The result maps word to class ID; words the model could
// not place, or placed into a class id it invented, are absent.
func (s *Service) ClassifyOOV(ctx context.Context, words []string, classes []Class) (map[string]string, error) {
	if !s.IsConfigured() {
		return nil, errors.New("assist: provider not configured")
	}
	if len(words) == 0 || len(classes) == 0 {
		return map[string]string{}, nil
	}

	raw, err := s.complete(ctx, buildClassifyPrompt(words, classes), classifySystemPrompt)
	if err != nil {
		return nil, fmt.Errorf("assist: classification call failed: %w", err)
	}

	placements, err := ParseClassification(raw)
	if err != nil {
		return nil, fmt.Errorf("assist: parse failed: %w", err)
	}

	valid := make(map[string]bool, len(classes))
	for _, c := range classes {
		valid[c.ID] = true
	}
	out := make(map[string]string, len(placements))
	for word, id := range placements {
		if valid[id] {
			out[word] = id
		}
	}
	return out, nil
}

// GuessPronunciation asks the model for a short IPA rendering of one word.
func (s *Service) GuessPronunciation(ctx context.Context, word string) (string, error) {
	if !s.IsConfigured() {
		return "", errors.New("assist: provider not configured")
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return "", errors.New("assist: empty word")
	}

	raw, err := s.complete(ctx, buildPronouncePrompt(word), pronounceSystemPrompt)
	if err != nil {
		return "", fmt.Errorf("assist: pronunciation call failed: %w", err)
	}

	guess := cleanPronunciation(raw)
	if guess == "" {
		return "", fmt.Errorf("assist: empty pronunciation for %q", word)
	}
	if utf8.RuneCountInString(guess) > maxPronunciationRunes {
		return "", fmt.Errorf("assist: implausible pronunciation for %q", word)
	}
	return guess, nil
}
