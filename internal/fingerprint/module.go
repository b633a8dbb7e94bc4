package fingerprint

import (
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"fingerprint",
		logfx.WithNamedLogger("fingerprint"),
		fx.Provide(NewService),
	)
}
