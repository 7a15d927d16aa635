// Package cli is the terminal presentation layer of the A.S.I.A. client.
// It renders chat turns and the saved-history panel, and drives the
// identity, chat, and history services through a small REPL.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/pixelstudio/asia/internal/api"
	"github.com/pixelstudio/asia/internal/config"
	"github.com/pixelstudio/asia/internal/logging"
	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/services"
	"github.com/pixelstudio/asia/internal/store"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	auth     services.AuthService
	sessions services.SessionManager
	chat     services.ChatService
	history  services.HistoryService
	db       *sql.DB
	reader   *bufio.Reader
	out      io.Writer

	mu         sync.Mutex
	userName   string
	userEmail  string
	lastItems  []models.ChatExchange
	lastStatus services.HistoryStatus
}

// NewApp opens the local database, wires the services, and restores any
// persisted session.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, repos, err := store.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "initializing database failed", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL)

	a := &App{
		config: cfg,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.sessions = services.NewSessionManager(repos.Session)
	a.auth = services.NewAuthService(db, logger)
	a.history = services.NewHistoryService(apiClient, a.sessions, a, logger)
	a.chat = services.NewChatService(apiClient, a.sessions, a.history, cfg.RefreshDelay, logger)

	// restore the greeting for a session that survived a restart
	if sess, err := a.sessions.Current(ctx); err == nil && sess != nil {
		a.setUser(sess.Name, sess.Email)
	}

	return a, nil
}

// Run starts the periodic history watcher and enters the REPL. It returns
// when the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.history.StartHistoryWatcher(ctx, a.config.HistoryPollInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isSignedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) setUser(name, email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
	a.userEmail = email
}

// getStatus renders the prompt suffix: the signed-in greeting plus a saved-chat
// count once the background watcher has delivered a view.
func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return ""
	}
	status := "(" + a.userName + " " + a.userEmail + ")"
	if a.lastStatus == services.StatusOK && len(a.lastItems) > 0 {
		status += fmt.Sprintf(" [%d saved]", len(a.lastItems))
	}
	return status
}

// ShowHistory receives pushed refresh results; the latest view is cached
// and rendered on the next history command.
func (a *App) ShowHistory(items []models.ChatExchange, status services.HistoryStatus) {
	if status == services.StatusLoading {
		return
	}
	a.mu.Lock()
	a.lastItems = items
	a.lastStatus = status
	a.mu.Unlock()
}
