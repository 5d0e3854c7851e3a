// Package notify delivers the quote of the day.
package notify

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotevault/internal/domain"
	"github.com/jsamuelsen/quotevault/internal/platform/logging"
)

// LogNotifier writes the quote of the day to the log. Push delivery is
// left to whatever tails it.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier logging to logger, or to the default
// logger when nil.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.FromContext(context.Background())
	}

	return &LogNotifier{logger: logger.With(slog.String("component", "notify.LogNotifier"))}
}

// NotifyDailyQuote logs quote as the quote of the day.
func (n *LogNotifier) NotifyDailyQuote(ctx context.Context, quote domain.Quote) error {
	n.logger.InfoContext(ctx, "quote of the day",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author),
		slog.String("category", quote.Category.Label()),
		slog.String("content", quote.Content),
	)

	return nil
}
