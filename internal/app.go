package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/gitpulse/gitpulse/internal/config"
	"github.com/gitpulse/gitpulse/internal/exitcode"
	"github.com/gitpulse/gitpulse/internal/fingerprint"
	"github.com/gitpulse/gitpulse/internal/git"
	"github.com/gitpulse/gitpulse/internal/history"
	"github.com/gitpulse/gitpulse/internal/notify"
	"github.com/gitpulse/gitpulse/internal/server"
	"github.com/gitpulse/gitpulse/internal/watcher"
	"github.com/gitpulse/gitpulse/pkg/badgerfx"
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func options() []fx.Option {
	return []fx.Option{
		// CORE MODULES
		logfx.Module(),
		logfx.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		fingerprint.Module(),
		git.Module(),
		notify.Module(),
		history.Module(),
		watcher.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("gitpulse starting up")
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("gitpulse shutting down gracefully")
					return nil
				},
			})
		}),
	}
}

func Run() {
	app := fx.New(options()...)

	// Bad configuration or an unusable repository is fatal before the watch
	// loop ever starts, with a distinct exit code per failure class.
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.For(err))
	}

	app.Run()
}
