package watcher

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/fingerprint"
	"github.com/gitpulse/gitpulse/internal/git"
	"github.com/gitpulse/gitpulse/internal/notify"
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"watcher",
		logfx.WithNamedLogger("watcher"),
		fx.Provide(func(s *fingerprint.Service) Hasher { return s }, fx.Private),
		fx.Provide(func(s *notify.Service) Sender { return s }, fx.Private),
		fx.Provide(NewGitAdapter, fx.Private),
		fx.Provide(NewService),
		// Startup preflight: a bad repository path is fatal before the loop
		// ever starts.
		fx.Invoke(func(gitSvc *git.Service) error {
			return gitSvc.Verify()
		}),
		fx.Invoke(func(lc fx.Lifecycle, service *Service) {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})

			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go func() {
						defer close(done)
						service.Run(ctx)
					}()
					return nil
				},
				OnStop: func(stopCtx context.Context) error {
					cancel()
					select {
					case <-done:
						return nil
					case <-stopCtx.Done():
						return stopCtx.Err()
					}
				},
			})
		}),
	)
}
