package sms

import (
	"context"
	"log/slog"

	"sprout/internal/domain/service"
)

// logSender writes codes to the log instead of dispatching them. Used in
// development when no SMS gateway is configured.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is the constructor for logSender.
func NewLogSender(logger *slog.Logger) service.ChallengeSender {
	return &logSender{logger: logger}
}

// SendCode logs the code that would have been sent.
func (s *logSender) SendCode(_ context.Context, phoneDigits, code string) error {
	s.logger.Info("SMS gateway not configured, logging verification code",
		slog.String("phone", phoneDigits),
		slog.String("code", code),
	)

	return nil
}
