package di

import (
	"go.uber.org/fx"

	"github.com/mkaryagin/heartbeat/internal/app"
	"github.com/mkaryagin/heartbeat/internal/config"
	"github.com/mkaryagin/heartbeat/internal/logger"
	"github.com/mkaryagin/heartbeat/internal/pkg/auth"
	"github.com/mkaryagin/heartbeat/internal/pkg/session"
	"github.com/mkaryagin/heartbeat/internal/server/http/handlers"
	"github.com/mkaryagin/heartbeat/internal/server/http/router"
	"github.com/mkaryagin/heartbeat/internal/storage/postgres"
	"github.com/mkaryagin/heartbeat/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		session.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.HeartbeatFacade) handlers.HeartbeatFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
		fx.Provide(handlers.NewHealthHandler),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
