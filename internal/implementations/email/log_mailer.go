package email

import (
	"context"
	"registration/internal/core/domain/activation"
	"registration/internal/core/domain/logging"
)

// LogMailer writes messages to the log instead of sending them, for test mode.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, message activation.Message) error {
	m.log.Info(
		ctx,
		"Email message.",
		logging.Entry("from", message.From),
		logging.Entry("to", message.To),
		logging.Entry("subject", message.Subject),
		logging.Entry("body", message.Body),
	)
	return nil
}
