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

func TestClient_Chat(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(chatResponse{
			Message: message{Role: "assistant", Content: "  a concise summary  "},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	content, err := c.Chat(context.Background(), "llama3.1:8b", "be brief", "summarise this")
	require.NoError(t, err)
	assert.Equal(t, "a concise summary", content, "response content is trimmed")

	// The request carries an ordered system+user conversation, non-streaming.
	assert.Equal(t, "llama3.1:8b", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be brief", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "summarise this", got.Messages[1].Content)
}

func TestClient_ChatTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Chat(context.Background(), "m", "s", "u")

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.Equal(t, "model not loaded", terr.Body)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_ChatParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.Chat(context.Background(), "m", "s", "u")

	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestClient_ChatEmptyResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty content", content: ""},
		{name: "whitespace only", content: "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(chatResponse{
					Message: message{Role: "assistant", Content: tt.content},
				})
			}))
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			_, err := c.Chat(context.Background(), "m", "s", "u")
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestClient_ChatServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the address refuses connections

	c := NewClient(srv.URL, nil)
	_, err := c.Chat(context.Background(), "m", "s", "u")
	assert.Error(t, err)
}
