package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCompletionServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), "unexpected path %s", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req["model"])
		msgs, ok := req["messages"].([]any)
		require.True(t, ok)
		require.Len(t, msgs, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o-mini",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": ` + jsonString(reply) + `},
					"finish_reason": "stop"
				}
			]
		}`))
	}))
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestDigester(t *testing.T, serverURL string) *Digester {
	t.Helper()
	cfg := &Config{
		BaseURL: serverURL,
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	}
	require.NoError(t, cfg.normalise())
	d, err := NewDigester(cfg)
	require.NoError(t, err)
	return d
}

func TestSummarize(t *testing.T) {
	server := newMockCompletionServer(t, "  Guidance raised; services revenue grew.  ")
	defer server.Close()

	d := newTestDigester(t, server.URL)
	digest, err := d.Summarize(context.Background(), "AAPL", "2022-10-27", "Operator: welcome to the call...")
	require.NoError(t, err)
	require.Equal(t, "Guidance raised; services revenue grew.", digest)
}

func TestSummarizeEmptyContent(t *testing.T) {
	server := newMockCompletionServer(t, "unused")
	defer server.Close()

	d := newTestDigester(t, server.URL)
	_, err := d.Summarize(context.Background(), "AAPL", "2022-10-27", "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty transcript")
}

func TestSummarizeNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer server.Close()

	d := newTestDigester(t, server.URL)
	_, err := d.Summarize(context.Background(), "AAPL", "2022-10-27", "some content")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}

func TestNewDigesterNilConfig(t *testing.T) {
	_, err := NewDigester(nil)
	require.Error(t, err)
}
