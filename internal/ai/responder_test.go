package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kaapav/kaapav-bot/internal/ai"
	"github.com/kaapav/kaapav-bot/internal/config"
)

func completion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
	return string(body)
}

func TestResponder_Reply(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantReply   string
		wantHandled bool
	}{
		{name: "answer", content: "  Our studs are hypoallergenic!  ", wantReply: "Our studs are hypoallergenic!", wantHandled: true},
		{name: "handoff", content: "HANDOFF"},
		{name: "empty", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

				var req map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "gpt-4o-mini", req["model"])
				msgs := req["messages"].([]any)
				require.Len(t, msgs, 2)
				assert.Contains(t, msgs[0].(map[string]any)["content"], "KAAPAV")

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(completion(tt.content)))
			}))
			defer server.Close()

			r := ai.NewResponder(config.OpenAIConfig{
				APIKey:    "sk-test",
				BaseURL:   server.URL,
				Model:     "gpt-4o-mini",
				MaxTokens: 100,
			}, "KAAPAV", zap.NewNop())

			reply, handled, err := r.Reply(context.Background(), "are your earrings safe for sensitive ears?", "en")
			require.NoError(t, err)
			assert.Equal(t, tt.wantReply, reply)
			assert.Equal(t, tt.wantHandled, handled)
		})
	}
}

func TestResponder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad model","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	r := ai.NewResponder(config.OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL, Model: "nope"}, "KAAPAV", zap.NewNop())
	_, handled, err := r.Reply(context.Background(), "hello", "en")

	assert.Error(t, err)
	assert.False(t, handled)
}

func TestResponder_NotConfigured(t *testing.T) {
	r := ai.NewResponder(config.OpenAIConfig{}, "KAAPAV", zap.NewNop())
	assert.False(t, r.Configured())

	_, handled, err := r.Reply(context.Background(), "hello", "en")
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
	assert.False(t, handled)
}
