package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testService builds a Service pointed at a local test server.
func testService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewService(Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
	})
}

// chatReply writes a well-formed chat-completion response carrying content.
func chatReply(w http.ResponseWriter, content string) {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewService(Config{APIKey: "k"}).IsConfigured())
	assert.False(t, NewService(Config{}).IsConfigured())
	assert.False(t, NewService(Config{Provider: "google", APIKey: "k"}).IsConfigured())
}

func TestClassifyOOV_PlacesWords(t *testing.T) {
	var gotReq chatRequest
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		chatReply(w, `{"shawty": "AO-G", "zamn": "NONE", "crazy": "ZZ-9"}`)
	})

	classes := []Class{
		{ID: "AO-G", Members: []string{"dog", "log", "fog"}},
		{ID: "AE-T", Members: []string{"cat", "hat"}},
	}
	placements, err := svc.ClassifyOOV(context.Background(), []string{"shawty", "zamn", "crazy"}, classes)
	require.NoError(t, err)

	// NONE dropped; ZZ-9 is not an offered class id
	assert.Equal(t, map[string]string{"shawty": "AO-G"}, placements)

	// The request carried the model, both classes, and all words
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	userPrompt := gotReq.Messages[1].Content
	assert.Contains(t, userPrompt, "AO-G")
	assert.Contains(t, userPrompt, "AE-T")
	assert.Contains(t, userPrompt, "shawty, zamn, crazy")
	assert.False(t, gotReq.Stream)
}

func TestClassifyOOV_NotConfigured(t *testing.T) {
	svc := NewService(Config{})
	_, err := svc.ClassifyOOV(context.Background(), []string{"shawty"}, []Class{{ID: "X"}})
	assert.Error(t, err)
}

func TestClassifyOOV_EmptyInputsSkipCall(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP call expected for empty inputs")
	})

	placements, err := svc.ClassifyOOV(context.Background(), nil, []Class{{ID: "X"}})
	require.NoError(t, err)
	assert.Empty(t, placements)

	placements, err = svc.ClassifyOOV(context.Background(), []string{"shawty"}, nil)
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestClassifyOOV_HTTPError(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := svc.ClassifyOOV(context.Background(), []string{"shawty"}, []Class{{ID: "X"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClassifyOOV_APIErrorPayload(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error": {"message": "bad model", "code": 400}}`)
	})

	_, err := svc.ClassifyOOV(context.Background(), []string{"shawty"}, []Class{{ID: "X"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad model")
}

func TestClassifyOOV_UnparseableContent(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(w, "I refuse to answer in JSON.")
	})

	_, err := svc.ClassifyOOV(context.Background(), []string{"shawty"}, []Class{{ID: "X"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse failed")
}

func TestGuessPronunciation(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(w, "/ʃɔːti/")
	})

	got, err := svc.GuessPronunciation(context.Background(), "shawty")
	require.NoError(t, err)
	assert.Equal(t, "ʃɔːti", got)
}

func TestGuessPronunciation_RejectsImplausible(t *testing.T) {
	svc := testService(t, func(w http.ResponseWriter, r *http.Request) {
		chatReply(w, strings.Repeat("ə", 60))
	})

	_, err := svc.GuessPronunciation(context.Background(), "shawty")
	assert.Error(t, err)
}

func TestGuessPronunciation_EmptyWord(t *testing.T) {
	svc := NewService(Config{APIKey: "k"})
	_, err := svc.GuessPronunciation(context.Background(), "   ")
	assert.Error(t, err)
}
