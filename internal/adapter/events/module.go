package events

import (
	"context"

	"go.uber.org/fx"

	"github.com/greencart/storefront/internal/config"
)

// Module wires the order event publisher. Without brokers configured
// the storefront runs with events disabled.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

func newPublisher(cfg *config.Config) Publisher {
	if cfg.KafkaBrokers == "" {
		return NopPublisher{}
	}
	return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
}
