// Package notify implements the domain Notifier collaborator.
package notify

import (
	"context"
	"log/slog"

	"dindigul/internal/domain/service"
)

// slogNotifier renders "show message" calls as structured log records.
// The browser original popped a toast; a headless service surfaces the
// same title/description pair to its operators instead. Clients see the
// message echoed in the API response envelope.
type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier is the constructor for slogNotifier.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

// Notify reports a user-facing message. It never blocks and never fails.
func (n *slogNotifier) Notify(ctx context.Context, title, description string) {
	n.logger.InfoContext(ctx, "User notification",
		slog.String("title", title),
		slog.String("description", description),
	)
}
