package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiClient(t *testing.T, handler http.HandlerFunc) (*geminiClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := newGeminiClient(Config{APIKey: "test-key"})
	require.NoError(t, err)

	gc, ok := client.(*geminiClient)
	require.True(t, ok)
	gc.baseURL = server.URL

	return gc, server
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	_, err := newGeminiClient(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeminiComplete(t *testing.T) {
	var gotBody geminiRequest

	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": `{"cleanedName":"Amazon"}`}},
				}},
			},
		})
	})

	got, err := client.Complete(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, `{"cleanedName":"Amazon"}`, got)

	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "classify this", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
}

func TestGeminiCompleteJoinsParts(t *testing.T) {
	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": `{"a":`}, {"text": `1}`}},
				}},
			},
		})
	})

	got, err := client.Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, got)
}

func TestGeminiCompleteEmptyResponse(t *testing.T) {
	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := client.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiCompleteWhitespaceOnlyText(t *testing.T) {
	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": "   \n"}},
				}},
			},
		})
	})

	_, err := client.Complete(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiCompleteHTTPError(t *testing.T) {
	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.False(t, errors.Is(err, ErrEmptyResponse))
}

func TestGeminiCompleteAPIErrorBody(t *testing.T) {
	client, _ := newTestGeminiClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "invalid argument"},
		})
	})

	_, err := client.Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}
