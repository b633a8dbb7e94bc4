package history

import (
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"history",
		logfx.WithNamedLogger("history"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
