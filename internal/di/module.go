package di

import (
	"go.uber.org/fx"

	"github.com/greencart/storefront/internal/adapter/events"
	"github.com/greencart/storefront/internal/adapter/razorpay"
	"github.com/greencart/storefront/internal/app"
	"github.com/greencart/storefront/internal/config"
	"github.com/greencart/storefront/internal/logger"
	"github.com/greencart/storefront/internal/pkg/auth"
	"github.com/greencart/storefront/internal/server/http/router"
	"github.com/greencart/storefront/internal/storage/postgres"
	"github.com/greencart/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(client razorpay.Client) usecase.PaymentGateway { return client }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
