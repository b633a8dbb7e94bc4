package logfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"logfx",
		fx.Provide(New),
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					// Sync on stdout returns an error on some platforms; the
					// file sink is what matters here.
					_ = logger.Sync()
					return nil
				},
			})
		}),
	)
}

// WithFxDefaultLogger routes fx's own events through the application logger.
func WithFxDefaultLogger() fx.Option {
	return fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	})
}

// WithNamedLogger decorates the module's logger with the given name.
func WithNamedLogger(name string) fx.Option {
	return fx.Decorate(func(logger *zap.Logger) *zap.Logger {
		return logger.Named(name)
	})
}
