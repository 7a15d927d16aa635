package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pixelstudio/asia/internal/api"
	"github.com/pixelstudio/asia/internal/logging"
	"github.com/pixelstudio/asia/internal/models"
)

// HistoryLimit bounds the surfaced history view.
const HistoryLimit = 40

// HistoryStatus describes the outcome of a refresh. The three empty states
// are distinct: signed out, signed in with no saved chats, and load failure.
type HistoryStatus int

const (
	StatusOK HistoryStatus = iota
	StatusLoading
	StatusNotSignedIn
	StatusEmpty
	StatusError
)

// String returns the user-facing label of the status.
func (s HistoryStatus) String() string {
	switch s {
	case StatusLoading:
		return "Loading history..."
	case StatusNotSignedIn:
		return "Sign in to see saved chats."
	case StatusEmpty:
		return "No saved chats yet."
	case StatusError:
		return "Could not load history."
	default:
		return ""
	}
}

// HistoryPresenter receives refresh results. The presentation layer
// implements it; services never reach into the UI directly.
type HistoryPresenter interface {
	ShowHistory(items []models.ChatExchange, status HistoryStatus)
}

// HistoryService reconciles the remote history feed into a normalized,
// per-user, bounded view.
type HistoryService interface {
	Refresher

	// StartHistoryWatcher refreshes on a fixed interval until ctx is done.
	// Run it on its own goroutine.
	StartHistoryWatcher(ctx context.Context, interval time.Duration)
}

type historyService struct {
	client    api.Client
	sessions  SessionManager
	presenter HistoryPresenter
	logger    logging.Logger

	// seq orders refresh completions; a completion older than the last
	// applied one is discarded, so a slow poll cannot clobber the view
	// produced by a later post-send refresh.
	seq     atomic.Uint64
	mu      sync.Mutex
	applied uint64
}

// NewHistoryService constructs a HistoryService pushing results to presenter.
func NewHistoryService(client api.Client, sessions SessionManager, presenter HistoryPresenter, logger logging.Logger) HistoryService {
	return &historyService{
		client:    client,
		sessions:  sessions,
		presenter: presenter,
		logger:    logger,
	}
}

// Refresh fetches, normalizes, filters, and bounds the remote history feed
// for the active session, pushing the outcome to the presenter. Failures are
// reported as StatusError; they are never retried here.
func (s *historyService) Refresh(ctx context.Context) ([]models.ChatExchange, HistoryStatus) {
	seq := s.seq.Add(1)

	sess, err := s.sessions.Current(ctx)
	if err != nil {
		s.logger.Warn(ctx, "reading session failed", "error", err)
		return s.publish(seq, nil, StatusNotSignedIn)
	}
	if sess == nil {
		return s.publish(seq, nil, StatusNotSignedIn)
	}

	// interim state while the fetch is outstanding; not sequence-guarded
	// because it never represents a completed refresh
	if s.presenter != nil {
		s.presenter.ShowHistory(nil, StatusLoading)
	}

	raw, err := s.client.FetchHistory(ctx)
	if err != nil {
		s.logger.Warn(ctx, "history fetch failed", "error", err)
		return s.publish(seq, nil, StatusError)
	}

	records, err := models.DecodeHistoryFeed(raw)
	if err != nil {
		s.logger.Warn(ctx, "history feed not decodable", "error", err)
		return s.publish(seq, nil, StatusError)
	}

	items := make([]models.ChatExchange, 0, HistoryLimit)
	for _, r := range records {
		ex, ok := r.Normalize(sess.UserID)
		if !ok {
			continue
		}
		items = append(items, ex)
		if len(items) == HistoryLimit {
			break
		}
	}

	if len(items) == 0 {
		return s.publish(seq, nil, StatusEmpty)
	}
	return s.publish(seq, items, StatusOK)
}

// publish applies a completed refresh unless a newer one already landed.
func (s *historyService) publish(seq uint64, items []models.ChatExchange, status HistoryStatus) ([]models.ChatExchange, HistoryStatus) {
	s.mu.Lock()
	stale := seq < s.applied
	if !stale {
		s.applied = seq
	}
	s.mu.Unlock()

	if !stale && s.presenter != nil {
		s.presenter.ShowHistory(items, status)
	}
	return items, status
}

// StartHistoryWatcher polls the feed on the given interval. Refresh itself
// handles the signed-out case without touching the network.
func (s *historyService) StartHistoryWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}
