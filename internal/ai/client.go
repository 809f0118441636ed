// Package ai integrates the locally-hosted language-model chat endpoint:
// a stateless chat client and the note summarisation service built on it.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyResponse is returned when the model replies with empty or
// whitespace-only content.
var ErrEmptyResponse = errors.New("model returned an empty response")

// TransportError is a non-success HTTP status from the chat endpoint. It
// carries the status code and raw body text so the failure can be diagnosed
// without a retry.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chat endpoint returned %d: %s", e.StatusCode, e.Body)
}

// ParseError is a chat response body that could not be decoded into the
// expected shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing chat response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// chatRequest is the JSON body sent to the chat endpoint.
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// message is one entry of a chat conversation.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the expected non-streaming response shape.
type chatResponse struct {
	Message message `json:"message"`
}

// Client sends non-streaming chat requests to a local Ollama-compatible
// endpoint. It holds no conversation state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient returns a chat client for the given base URL (scheme and host,
// e.g. "http://127.0.0.1:11434"). A nil logger disables logging.
func NewClient(baseURL string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		log:        log,
	}
}

// Chat sends a two-message (system, then user) conversation to the model
// and returns the trimmed response content. One blocking round trip: no
// retry, no streaming, no timeout beyond the transport default.
// Failure modes: *TransportError for a non-success status, *ParseError for
// an undecodable body, ErrEmptyResponse for blank content.
func (c *Client) Chat(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	url := c.baseURL + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("chat request", zap.String("url", url), zap.String("model", model))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer res.Body.Close()

	// Capture the status before consuming the body.
	status := res.StatusCode

	if status < 200 || status > 299 {
		body, _ := io.ReadAll(res.Body)
		return "", &TransportError{StatusCode: status, Body: string(body)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", &ParseError{Err: err}
	}

	content := strings.TrimSpace(parsed.Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
