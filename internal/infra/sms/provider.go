package sms

import (
	"log/slog"

	"sprout/config"
	"sprout/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams defines the parameters for challenge sender creation.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChallengeSender selects the dispatch channel from configuration: the
// HTTP gateway when configured, otherwise the development log sender.
func NewChallengeSender(params ProviderParams) service.ChallengeSender {
	if params.Config.Sms != nil && params.Config.Sms.Endpoint != "" {
		params.Logger.Info("Using SMS gateway challenge sender", slog.String("endpoint", params.Config.Sms.Endpoint))

		return NewRestyGateway(params.Config.Sms)
	}

	params.Logger.Warn("No SMS gateway configured, verification codes will be logged")

	return NewLogSender(params.Logger)
}
