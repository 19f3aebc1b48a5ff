package mail

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
)

// LogSender writes messages to the log instead of delivering them.
// Development only: the log then contains login codes.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "mail")}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info(ctx, "mail", "to", to, "subject", subject, "body", body)
	return nil
}
