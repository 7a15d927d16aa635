package cli

import (
	"context"
	"errors"

	"github.com/pixelstudio/asia/internal/common"
)

// samplePrompt is the canned question sent by the try command.
const samplePrompt = "Hello A.S.I.A., tell me something interesting."

// Say sends message to the assistant on behalf of the active session, if
// any, and prints the reply. Connectivity failures come back as reply text
// and are printed the same way.
func (a *App) Say(ctx context.Context, message string) error {
	reply, err := a.chat.Send(ctx, message, false)
	if err != nil {
		if errors.Is(err, common.ErrEmptyMessage) {
			return nil
		}
		a.logger.Error(ctx, "sending message failed", "error", err)
		return err
	}

	printlnFn(replyStyle.Render(reply))
	return nil
}

// Try sends a sample question anonymously, so a visitor can see the
// assistant answer before creating an account. The exchange is not
// attributed to any user and never shows up in saved history.
func (a *App) Try(ctx context.Context) error {
	printlnFn(queryStyle.Render(samplePrompt))

	reply, err := a.chat.Send(ctx, samplePrompt, true)
	if err != nil {
		a.logger.Error(ctx, "sending sample message failed", "error", err)
		return err
	}

	printlnFn(replyStyle.Render(reply))
	return nil
}
