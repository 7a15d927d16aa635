package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelstudio/asia/internal/api"
	"github.com/pixelstudio/asia/internal/logging"
	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/store"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func setupStore(t *testing.T) (*sql.DB, *store.Repositories) {
	t.Helper()
	db, repos, err := store.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, repos
}

// ---- fake client ----

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	ChatReply *api.ChatReply
	ChatErr   error

	HistoryRaw json.RawMessage
	HistoryErr error

	ChatCalls    int
	HistoryCalls int

	LastMessage string
	LastUserID  string
}

func (f *fakeClient) SendChat(ctx context.Context, message, userID string) (*api.ChatReply, error) {
	f.ChatCalls++
	f.LastMessage = message
	f.LastUserID = userID
	if f.ChatErr != nil {
		return nil, f.ChatErr
	}
	return f.ChatReply, nil
}

func (f *fakeClient) FetchHistory(ctx context.Context) (json.RawMessage, error) {
	f.HistoryCalls++
	return f.HistoryRaw, f.HistoryErr
}

// ---- fake presenter ----

type presented struct {
	items  []models.ChatExchange
	status HistoryStatus
}

type fakePresenter struct {
	mu    sync.Mutex
	calls []presented
}

func (p *fakePresenter) ShowHistory(items []models.ChatExchange, status HistoryStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, presented{items: items, status: status})
}

func (p *fakePresenter) last(t *testing.T) presented {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.calls, "expected at least one ShowHistory call")
	return p.calls[len(p.calls)-1]
}

func (p *fakePresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
