package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
	"github.com/go-playground/validator/v10"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type logConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type storageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type watchConfig struct {
	// RepoPath is the git working tree the daemon operates on.
	RepoPath string `koanf:"repo_path" validate:"required"`

	// Target is the monitored file or directory, relative to RepoPath.
	Target string `koanf:"target" validate:"required"`

	Interval time.Duration `koanf:"interval" validate:"gt=0"`

	// Exclude lists base names skipped when fingerprinting a directory
	// target. Version control metadata is always skipped.
	Exclude []string `koanf:"exclude"`

	// FSEvents wakes the poll loop early on filesystem events instead of
	// waiting out the full interval. Polling remains the source of truth.
	FSEvents bool `koanf:"fs_events"`
}

type gitConfig struct {
	Remote      string        `koanf:"remote" validate:"required"`
	Branch      string        `koanf:"branch" validate:"required"`
	AuthorName  string        `koanf:"author_name"`
	AuthorEmail string        `koanf:"author_email"`
	Timeout     time.Duration `koanf:"timeout"`
}

type emailConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Endpoint   string        `koanf:"endpoint" validate:"omitempty,url"`
	APIKey     string        `koanf:"api_key" validate:"required_if=Enabled true"`
	From       string        `koanf:"from" validate:"required_if=Enabled true,omitempty,email"`
	Recipients string        `koanf:"recipients" validate:"required_if=Enabled true"`
	Subject    string        `koanf:"subject"`
	Timeout    time.Duration `koanf:"timeout"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Log     logConfig     `koanf:"log"`
	Storage storageConfig `koanf:"storage"`
	Watch   watchConfig   `koanf:"watch"`
	Git     gitConfig     `koanf:"git"`
	Email   emailConfig   `koanf:"email"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Log: logConfig{
			Level: "info",
			File:  "",
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Watch: watchConfig{
			Interval: 5 * time.Second,
		},

		Git: gitConfig{
			Remote:      "origin",
			Branch:      "main",
			AuthorName:  "gitpulse",
			AuthorEmail: "gitpulse@localhost",
			Timeout:     30 * time.Second,
		},

		Email: emailConfig{
			Enabled:  true,
			Endpoint: "https://api.sendgrid.com/v3/mail/send",
			Subject:  "gitpulse: change committed",
			Timeout:  10 * time.Second,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg, nil
}
