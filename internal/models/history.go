package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pixelstudio/asia/internal/common"
)

// SnippetLimit caps the length of a response snippet, in runes.
const SnippetLimit = 160

// ChatExchange is the canonical, post-normalization form of one remote
// history row.
type ChatExchange struct {
	Timestamp       time.Time
	UserID          string
	Query           string
	ResponseSnippet string
}

// RecordKind tags the shape of a raw history row.
type RecordKind int

const (
	// RecordPositional is a sequence: [ts, user_id, query, response].
	RecordPositional RecordKind = iota
	// RecordStructured is an object exposing a user_id field.
	RecordStructured
	// RecordUnrecognized is any other shape.
	RecordUnrecognized
)

// RawHistoryRecord is one row of the remote history feed before
// normalization, decoded into a tagged variant over the three shapes the
// feed is known to produce.
type RawHistoryRecord struct {
	Kind RecordKind

	positional []any
	fields     map[string]any
	raw        json.RawMessage
}

// DecodeHistoryFeed splits the raw /history response into individual rows.
// Accepted shapes: a bare JSON array of rows, or an object wrapping the rows
// under "history". Anything else fails with common.ErrMalformedFeed.
func DecodeHistoryFeed(raw json.RawMessage) ([]RawHistoryRecord, error) {
	var rows []json.RawMessage

	if err := json.Unmarshal(raw, &rows); err != nil {
		var wrapper struct {
			History []json.RawMessage `json:"history"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.History == nil {
			return nil, common.ErrMalformedFeed
		}
		rows = wrapper.History
	}

	records := make([]RawHistoryRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, DecodeHistoryRecord(row))
	}
	return records, nil
}

// DecodeHistoryRecord classifies a single raw row. An object without a
// user_id field counts as unrecognized: its owner cannot be established
// directly, only via the substring fallback in Normalize.
func DecodeHistoryRecord(raw json.RawMessage) RawHistoryRecord {
	var seq []any
	if err := json.Unmarshal(raw, &seq); err == nil {
		return RawHistoryRecord{Kind: RecordPositional, positional: seq, raw: raw}
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err == nil {
		if _, ok := obj["user_id"]; ok {
			return RawHistoryRecord{Kind: RecordStructured, fields: obj, raw: raw}
		}
		return RawHistoryRecord{Kind: RecordUnrecognized, fields: obj, raw: raw}
	}

	return RawHistoryRecord{Kind: RecordUnrecognized, raw: raw}
}

// Normalize converts the record into canonical form and reports whether it
// belongs to the given user. It is total over all three kinds: an
// unrecognized row is matched by serialized-substring containment, a weak
// heuristic kept for compatibility with unspecified feed shapes. Do not
// strengthen it silently; that changes filtering semantics.
func (r RawHistoryRecord) Normalize(userID string) (ChatExchange, bool) {
	if userID == "" {
		return ChatExchange{}, false
	}

	switch r.Kind {
	case RecordPositional:
		if stringAt(r.positional, 1) != userID {
			return ChatExchange{}, false
		}
		return ChatExchange{
			Timestamp:       epochAt(r.positional, 0),
			UserID:          userID,
			Query:           stringAt(r.positional, 2),
			ResponseSnippet: TruncateSnippet(stringAt(r.positional, 3)),
		}, true

	case RecordStructured:
		if fieldString(r.fields, "user_id") != userID {
			return ChatExchange{}, false
		}
		return ChatExchange{
			Timestamp:       fieldEpoch(r.fields, "ts"),
			UserID:          userID,
			Query:           fieldString(r.fields, "query"),
			ResponseSnippet: TruncateSnippet(fieldString(r.fields, "response")),
		}, true

	default:
		if !strings.Contains(string(r.raw), userID) {
			return ChatExchange{}, false
		}
		// best-effort extraction; fields is nil for non-object rows
		return ChatExchange{
			Timestamp:       fieldEpoch(r.fields, "ts"),
			UserID:          userID,
			Query:           fieldString(r.fields, "query"),
			ResponseSnippet: TruncateSnippet(fieldString(r.fields, "response")),
		}, true
	}
}

// TruncateSnippet bounds s to SnippetLimit runes.
func TruncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= SnippetLimit {
		return s
	}
	return string(runes[:SnippetLimit])
}

func stringAt(seq []any, i int) string {
	if i >= len(seq) {
		return ""
	}
	s, _ := seq[i].(string)
	return s
}

func epochAt(seq []any, i int) time.Time {
	if i >= len(seq) {
		return time.Time{}
	}
	return epochSeconds(seq[i])
}

func fieldString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func fieldEpoch(fields map[string]any, key string) time.Time {
	v, ok := fields[key]
	if !ok {
		return time.Time{}
	}
	return epochSeconds(v)
}

// epochSeconds interprets a JSON number as Unix seconds. Non-numeric values
// produce the zero time.
func epochSeconds(v any) time.Time {
	sec, ok := v.(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(sec), 0)
}
