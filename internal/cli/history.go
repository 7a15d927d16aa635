package cli

import (
	"context"

	"github.com/pixelstudio/asia/internal/models"
	"github.com/pixelstudio/asia/internal/services"
)

// History refreshes the saved-chats view and renders it, newest first as the
// feed delivers them. When there is nothing to show, the status line says
// why: signed out, empty, or a load failure.
func (a *App) History(ctx context.Context) error {
	printlnFn(statusStyle.Render(services.StatusLoading.String()))

	items, status := a.history.Refresh(ctx)

	if status != services.StatusOK {
		printlnFn(statusStyle.Render(status.String()))
		return nil
	}

	printlnFn(headerStyle.Render("Saved chats"))
	for _, item := range items {
		printlnFn(renderExchange(item))
	}
	return nil
}

func renderExchange(item models.ChatExchange) string {
	line := dateStyle.Render(item.Timestamp.Local().Format("2006-01-02 15:04")) +
		"  " + queryStyle.Render(item.Query)
	if item.ResponseSnippet != "" {
		line += "\n    " + snippetStyle.Render(item.ResponseSnippet)
	}
	return line
}
