package git

import (
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"git",
		logfx.WithNamedLogger("git"),
		fx.Provide(NewService),
	)
}
