package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClient talks JSON over HTTP to the conversational backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the given base URL, e.g.
// "http://127.0.0.1:5001". A trailing slash is tolerated.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type chatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

func (c *HTTPClient) SendChat(ctx context.Context, message, userID string) (*ChatReply, error) {
	body, err := json.Marshal(chatRequest{Message: message, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("chat request: unexpected status %s", resp.Status)
	}

	var reply ChatReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decoding chat response: %w", err)
	}
	return &reply, nil
}

func (c *HTTPClient) FetchHistory(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, fmt.Errorf("building history request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("history request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("history request: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading history response: %w", err)
	}
	return json.RawMessage(body), nil
}
