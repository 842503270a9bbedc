package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/llm"
	"folio/internal/llm/gemini"
)

func newTestClient(serverURL string) *gemini.Client {
	cfg := &config.ModelConfig{
		Provider:     "gemini",
		APIKey:       "test-gemini-key",
		DefaultModel: "gemini-2.0-flash",
		TimeoutSecs:  30,
		Temperature:  0.7,
	}
	return gemini.NewClientWithEndpoint(cfg, serverURL)
}

func successResponse(texts ...string) map[string]interface{} {
	parts := make([]map[string]interface{}, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, map[string]interface{}{"text": text})
	}
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role":  "model",
					"parts": parts,
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestInvoke_TextOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		// Text-only payloads carry a proper system instruction.
		sysInstr := reqBody["system_instruction"].(map[string]interface{})
		sysParts := sysInstr["parts"].([]interface{})
		assert.Equal(t, "be helpful", sysParts[0].(map[string]interface{})["text"])

		contents := reqBody["contents"].([]interface{})
		require.Len(t, contents, 1)
		msg := contents[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		parts := msg["parts"].([]interface{})
		require.Len(t, parts, 1)
		assert.Equal(t, "hello", parts[0].(map[string]interface{})["text"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse(`{"ok": true}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Invoke(context.Background(), domain.PromptPayload{System: "be helpful", User: "hello"})

	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, resp.Content)
}

func TestInvoke_Multimodal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))

		// With images the system and user prompts collapse into one text part.
		assert.Nil(t, reqBody["system_instruction"])
		contents := reqBody["contents"].([]interface{})
		parts := contents[0].(map[string]interface{})["parts"].([]interface{})
		require.Len(t, parts, 3)

		textPart := parts[0].(map[string]interface{})
		assert.Contains(t, textPart["text"], "sys")
		assert.Contains(t, textPart["text"], "analyze")

		inline := parts[1].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/png", inline["mime_type"])
		assert.Equal(t, "AAAA", inline["data"])

		inline2 := parts[2].(map[string]interface{})["inline_data"].(map[string]interface{})
		assert.Equal(t, "image/jpeg", inline2["mime_type"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("done"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Invoke(context.Background(), domain.PromptPayload{
		System: "sys",
		User:   "analyze",
		Images: []string{"data:image/png;base64,AAAA", "data:image/jpeg;base64,BBBB", "not-a-data-url"},
	})

	require.NoError(t, err)
	assert.Equal(t, "done", resp.Content)
}

func TestInvoke_MultiPartResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(successResponse("part one ", "part two"))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.Invoke(context.Background(), domain.PromptPayload{System: "s", User: "u"})

	require.NoError(t, err)
	parts, ok := resp.Content.([]any)
	require.True(t, ok)
	require.Len(t, parts, 2)
	first := parts[0].(map[string]any)
	assert.Equal(t, "text", first["type"])
	assert.Equal(t, "part one ", first["text"])
}

func TestInvoke_MissingAPIKey(t *testing.T) {
	cfg := &config.ModelConfig{Provider: "gemini"}
	c := gemini.NewClientWithEndpoint(cfg, "http://unused")

	_, err := c.Invoke(context.Background(), domain.PromptPayload{System: "s", User: "u"})

	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestInvoke_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), domain.PromptPayload{System: "s", User: "u"})

	require.Error(t, err)
	var callErr *llm.ModelCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "gemini", callErr.Provider)
	assert.Contains(t, callErr.Error(), "429")
}

func TestInvoke_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.Invoke(context.Background(), domain.PromptPayload{System: "s", User: "u"})

	var callErr *llm.ModelCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, callErr.Error(), "no candidates")
}
