package otp

import (
	"log/slog"

	"sprout/config"
	"sprout/internal/domain/service"

	"go.uber.org/fx"
)

// ProviderParams defines the parameters for challenge store creation.
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewChallengeStore selects the store implementation from configuration:
// Redis when configured, otherwise the in-process store.
func NewChallengeStore(params ProviderParams) service.ChallengeStore {
	if params.Config.Redis != nil && params.Config.Redis.Addr != "" {
		params.Logger.Info("Using Redis challenge store", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisStore(params.Config.Redis)
	}

	params.Logger.Info("Using in-memory challenge store")

	return NewMemoryStore()
}
