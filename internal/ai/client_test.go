package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the prompt and returns the extracted answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			var req generateRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			require.Len(t, req.Contents[0].Parts, 1)
			assert.Equal(t, "what goes with a linen shirt?", req.Contents[0].Parts[0].Text)

			resp := GenerateResponse{
				Candidates: []Candidate{{Content: Content{Parts: []Part{{Text: "Chinos."}}}}},
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}))
		defer server.Close()

		client := NewClient(server.URL, "gemini-1.5-flash", "test-key")

		answer, err := client.Generate(ctx, "what goes with a linen shirt?")
		require.NoError(t, err)
		assert.Equal(t, "Chinos.", answer)
	})

	t.Run("falls back when the provider omits the answer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{}]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, "gemini-1.5-flash", "test-key")

		answer, err := client.Generate(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, NoAnswer, answer)
	})

	t.Run("non-200 provider status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClient(server.URL, "gemini-1.5-flash", "test-key")

		_, err := client.Generate(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("malformed provider body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "gemini-1.5-flash", "test-key")

		_, err := client.Generate(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode provider response")
	})

	t.Run("unreachable provider is an error", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", "gemini-1.5-flash", "test-key")

		_, err := client.Generate(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to call provider")
	})
}
