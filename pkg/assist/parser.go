package assist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxPronunciationRunes bounds a plausible single-word IPA answer.
const maxPronunciationRunes = 40

// ParseClassification parses the raw LLM response into word-to-class-id
// placements. Handles markdown code fences and attempts repair on malformed
// JSON. "NONE" placements are dropped.
func ParseClassification(raw string) (map[string]string, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))
	if cleaned == "" {
		return map[string]string{}, nil
	}

	var placements map[string]string
	if err := json.Unmarshal([]byte(cleaned), &placements); err == nil {
		return filterPlacements(placements), nil
	}

	// Last resort: the model wrapped the object in prose. Take the
	// outermost braces and retry.
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &placements); err == nil {
			return filterPlacements(placements), nil
		}
	}

	return nil, fmt.Errorf("assist: failed to parse classification response")
}

// filterPlacements drops NONE answers and blank keys or values.
func filterPlacements(placements map[string]string) map[string]string {
	out := make(map[string]string, len(placements))
	for word, id := range placements {
		word = strings.TrimSpace(word)
		id = strings.TrimSpace(id)
		if word == "" || id == "" || strings.EqualFold(id, "none") {
			continue
		}
		out[word] = id
	}
	return out
}

// stripCodeFence removes markdown code block wrappers (```json ... ```).
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	// Remove first line (```json or ```)
	if len(lines) > 0 {
		lines = lines[1:]
	}
	// Remove last line if it's a closing fence
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// cleanPronunciation strips fences, surrounding slashes or brackets, and
// anything past the first line.
func cleanPronunciation(raw string) string {
	s := strings.TrimSpace(stripCodeFence(strings.TrimSpace(raw)))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "/[]`")
	return strings.TrimSpace(s)
}
