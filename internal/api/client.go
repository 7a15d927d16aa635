// Package api defines the contract of the remote conversational service and
// its HTTP implementation. The service exposes two endpoints: POST /chat for
// a single turn and GET /history for the raw exchange log.
package api

import (
	"context"
	"encoding/json"
)

// Client is the remote service surface consumed by the chat and history
// services. Implementations must honor context cancellation.
type Client interface {
	// SendChat submits one chat turn. userID may be empty for anonymous sends.
	SendChat(ctx context.Context, message, userID string) (*ChatReply, error)

	// FetchHistory returns the raw /history response body. The feed's shape
	// is not guaranteed, so decoding is left to the caller.
	FetchHistory(ctx context.Context) (json.RawMessage, error)
}

// noResponseText is shown when the backend reply carries neither of the two
// accepted response fields.
const noResponseText = "Sorry, no response."

// ChatReply is the decoded /chat response. The backend has answered under
// both field names over time, so both are accepted.
type ChatReply struct {
	Response string `json:"response"`
	Answer   string `json:"answer"`
}

// Text returns the displayable reply: the primary field, then the fallback,
// then a fixed no-response sentinel.
func (r *ChatReply) Text() string {
	if r.Response != "" {
		return r.Response
	}
	if r.Answer != "" {
		return r.Answer
	}
	return noResponseText
}
