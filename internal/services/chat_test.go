package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelstudio/asia/internal/api"
	"github.com/pixelstudio/asia/internal/common"
	"github.com/pixelstudio/asia/internal/models"
)

// stubRefresher counts refresh invocations.
type stubRefresher struct {
	calls int
}

func (r *stubRefresher) Refresh(ctx context.Context) ([]models.ChatExchange, HistoryStatus) {
	r.calls++
	return nil, StatusOK
}

// captureAfterFunc replaces the afterFunc seam for the duration of the test.
// Scheduled callbacks run synchronously and the delays are recorded.
func captureAfterFunc(t *testing.T) *[]time.Duration {
	t.Helper()
	orig := afterFunc
	t.Cleanup(func() { afterFunc = orig })

	var delays []time.Duration
	afterFunc = func(d time.Duration, fn func()) *time.Timer {
		delays = append(delays, d)
		fn()
		return time.NewTimer(0)
	}
	return &delays
}

func newChatFixture(t *testing.T, fc *fakeClient) (ChatService, SessionManager, *stubRefresher) {
	t.Helper()
	_, repos := setupStore(t)
	sessions := NewSessionManager(repos.Session)
	refresher := &stubRefresher{}
	svc := NewChatService(fc, sessions, refresher, 400*time.Millisecond, testLogger())
	return svc, sessions, refresher
}

func TestSend_EmptyMessageIsLocalNoOp(t *testing.T) {
	fc := &fakeClient{}
	svc, _, refresher := newChatFixture(t, fc)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), msg, false)
		require.ErrorIs(t, err, common.ErrEmptyMessage)
	}
	assert.Zero(t, fc.ChatCalls, "no network call for empty input")
	assert.Zero(t, refresher.calls)
}

func TestSend_AttachesUserIDWhenSignedIn(t *testing.T) {
	delays := captureAfterFunc(t)
	fc := &fakeClient{ChatReply: &api.ChatReply{Response: "hi there"}}
	svc, sessions, refresher := newChatFixture(t, fc)
	ctx := context.Background()

	require.NoError(t, sessions.Activate(ctx, "u1", "ada@x.com", "Ada"))

	text, err := svc.Send(ctx, "hello", false)
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
	assert.Equal(t, "u1", fc.LastUserID)

	assert.Equal(t, 1, refresher.calls, "exactly one refresh per identified send")
	require.Len(t, *delays, 1)
	assert.Equal(t, 400*time.Millisecond, (*delays)[0])
}

func TestSend_AnonymousSuppressesUserIDAndRefresh(t *testing.T) {
	captureAfterFunc(t)
	fc := &fakeClient{ChatReply: &api.ChatReply{Response: "ok"}}
	svc, sessions, refresher := newChatFixture(t, fc)
	ctx := context.Background()

	require.NoError(t, sessions.Activate(ctx, "u1", "ada@x.com", "Ada"))

	_, err := svc.Send(ctx, "hello", true)
	require.NoError(t, err)
	assert.Empty(t, fc.LastUserID)
	assert.Zero(t, refresher.calls)
}

func TestSend_SignedOutSendsWithoutUserID(t *testing.T) {
	captureAfterFunc(t)
	fc := &fakeClient{ChatReply: &api.ChatReply{Answer: "fallback text"}}
	svc, _, refresher := newChatFixture(t, fc)

	text, err := svc.Send(context.Background(), "hello", false)
	require.NoError(t, err)
	assert.Equal(t, "fallback text", text)
	assert.Empty(t, fc.LastUserID)
	assert.Zero(t, refresher.calls)
}

func TestSend_NoResponseFieldsYieldsSentinel(t *testing.T) {
	fc := &fakeClient{ChatReply: &api.ChatReply{}}
	svc, _, _ := newChatFixture(t, fc)

	text, err := svc.Send(context.Background(), "hello", false)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, no response.", text)
}

func TestSend_TransportFailureIsHandledLocally(t *testing.T) {
	captureAfterFunc(t)
	fc := &fakeClient{ChatErr: errors.New("connection refused")}
	svc, sessions, refresher := newChatFixture(t, fc)
	ctx := context.Background()

	require.NoError(t, sessions.Activate(ctx, "u1", "ada@x.com", "Ada"))

	text, err := svc.Send(ctx, "hello", false)
	require.NoError(t, err, "transport trouble is not an error to the caller")
	assert.Equal(t, "Error: Cannot connect to server.", text)
	assert.Zero(t, refresher.calls, "failed sends schedule no refresh")
}
