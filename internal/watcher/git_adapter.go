package watcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/gitpulse/gitpulse/internal/git"
	"github.com/samber/lo"
)

// gitAdapter adapts the git.Service to the watcher's Repository interface.
type gitAdapter struct {
	gitSvc *git.Service
}

func NewGitAdapter(gitSvc *git.Service) Repository {
	return &gitAdapter{gitSvc: gitSvc}
}

func (a *gitAdapter) Stage(ctx context.Context, path string) error {
	return a.gitSvc.Stage(ctx, path)
}

func (a *gitAdapter) StagedFiles(ctx context.Context) ([]string, error) {
	return a.gitSvc.StagedFiles(ctx)
}

func (a *gitAdapter) Commit(ctx context.Context, message string) (string, error) {
	commit, err := a.gitSvc.Commit(ctx, message)
	if err != nil {
		return "", err
	}

	return commit.Hash, nil
}

func (a *gitAdapter) RemoteInfo(ctx context.Context) []string {
	remotes, err := a.gitSvc.Remotes(ctx)
	if err != nil {
		return []string{fmt.Sprintf("failed to list remotes: %v", err)}
	}

	return lo.Map(remotes, func(remote git.Remote, _ int) string {
		return fmt.Sprintf("%s %s", remote.Name, strings.Join(remote.URLs, " "))
	})
}

func (a *gitAdapter) Push(ctx context.Context) error {
	return a.gitSvc.Push(ctx)
}
