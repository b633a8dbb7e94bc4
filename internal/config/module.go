package config

import (
	"github.com/gitpulse/gitpulse/internal/fingerprint"
	"github.com/gitpulse/gitpulse/internal/git"
	"github.com/gitpulse/gitpulse/internal/notify"
	"github.com/gitpulse/gitpulse/internal/watcher"
	"github.com/gitpulse/gitpulse/pkg/badgerfx"
	"github.com/gitpulse/gitpulse/pkg/logfx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) logfx.Config {
			return logfx.Config{
				Level: cfg.Log.Level,
				File:  cfg.Log.File,
			}
		}),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) fingerprint.Config {
			return fingerprint.Config{
				Exclude: cfg.Watch.Exclude,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				RepoPath:    cfg.Watch.RepoPath,
				Remote:      cfg.Git.Remote,
				Branch:      cfg.Git.Branch,
				AuthorName:  cfg.Git.AuthorName,
				AuthorEmail: cfg.Git.AuthorEmail,
				Timeout:     cfg.Git.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) notify.Config {
			return notify.Config{
				Enabled:    cfg.Email.Enabled,
				Endpoint:   cfg.Email.Endpoint,
				APIKey:     cfg.Email.APIKey,
				From:       cfg.Email.From,
				Recipients: cfg.Email.Recipients,
				Subject:    cfg.Email.Subject,
				Timeout:    cfg.Email.Timeout,
			}
		}),
		fx.Provide(func(cfg Config) watcher.Config {
			return watcher.Config{
				RepoPath: cfg.Watch.RepoPath,
				Target:   cfg.Watch.Target,
				Interval: cfg.Watch.Interval,
				FSEvents: cfg.Watch.FSEvents,
			}
		}),
	)
}
