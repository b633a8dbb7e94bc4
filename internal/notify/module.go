package notify

import (
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"notify",
		logfx.WithNamedLogger("notify"),
		fx.Provide(NewService),
	)
}
