// Package exitcode maps fatal startup error classes to process exit codes.
package exitcode

import (
	"errors"

	"github.com/gitpulse/gitpulse/internal/config"
	"github.com/gitpulse/gitpulse/internal/git"
)

const (
	OK = 0

	// Config is returned when the configuration is missing or invalid.
	Config = 1

	// Environment is returned when the repository path cannot be entered.
	Environment = 2

	// NotARepository is returned when the path is not a git working tree.
	NotARepository = 3
)

// For classifies a startup error. Anything that is not a recognized
// configuration failure is treated as an environment failure.
func For(err error) int {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, config.ErrInvalid):
		return Config
	case errors.Is(err, git.ErrNotARepository):
		return NotARepository
	case errors.Is(err, git.ErrPathInaccessible):
		return Environment
	}

	return Environment
}
