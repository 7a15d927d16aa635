package services

import (
	"context"
	"strings"
	"time"

	"github.com/pixelstudio/asia/internal/api"
	"github.com/pixelstudio/asia/internal/common"
	"github.com/pixelstudio/asia/internal/logging"
	"github.com/pixelstudio/asia/internal/models"
)

// connectivityErrorText is the fixed reply shown when the backend cannot be
// reached or its response cannot be parsed. Transport trouble is a local,
// recoverable condition, not an error the caller has to handle.
const connectivityErrorText = "Error: Cannot connect to server."

// afterFunc is a test seam for time.AfterFunc.
var afterFunc = time.AfterFunc

// Refresher triggers a history reload. ChatService schedules one after each
// authenticated send so the remote log has time to record the new exchange.
type Refresher interface {
	Refresh(ctx context.Context) ([]models.ChatExchange, HistoryStatus)
}

// ChatService dispatches chat turns to the remote service.
type ChatService interface {
	// Send submits one turn and returns the reply text. An empty or
	// whitespace-only message fails with common.ErrEmptyMessage before any
	// network activity. Transport failures come back as a fixed
	// connectivity message with a nil error.
	Send(ctx context.Context, message string, anonymous bool) (string, error)
}

type chatService struct {
	client       api.Client
	sessions     SessionManager
	history      Refresher
	refreshDelay time.Duration
	logger       logging.Logger
}

// NewChatService constructs a ChatService. history may be nil when no
// refresh target exists (e.g. in isolation tests).
func NewChatService(client api.Client, sessions SessionManager, history Refresher, refreshDelay time.Duration, logger logging.Logger) ChatService {
	return &chatService{
		client:       client,
		sessions:     sessions,
		history:      history,
		refreshDelay: refreshDelay,
		logger:       logger,
	}
}

func (s *chatService) Send(ctx context.Context, message string, anonymous bool) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", common.ErrEmptyMessage
	}

	userID := ""
	if !anonymous {
		sess, err := s.sessions.Current(ctx)
		if err != nil {
			s.logger.Warn(ctx, "reading session failed, sending anonymously", "error", err)
		}
		if sess != nil {
			userID = sess.UserID
		}
	}

	reply, err := s.client.SendChat(ctx, message, userID)
	if err != nil {
		s.logger.Warn(ctx, "chat send failed", "error", err)
		return connectivityErrorText, nil
	}

	// The backend records the exchange only for identified sends, so only
	// those warrant a follow-up history refresh.
	if userID != "" && s.history != nil {
		afterFunc(s.refreshDelay, func() {
			s.history.Refresh(context.Background())
		})
	}

	return reply.Text(), nil
}
