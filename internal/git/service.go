package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap"
)

type Service struct {
	config Config

	logger *zap.Logger
}

// NewService creates a new git service bound to the configured working tree.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Verify checks that the configured repository path exists and is a git
// working tree. Called once at startup; failures here are fatal.
func (s *Service) Verify() error {
	info, err := os.Stat(s.config.RepoPath)
	if err != nil {
		s.logger.Error("repository path is not accessible",
			zap.String("path", s.config.RepoPath), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPathInaccessible, err)
	}
	if !info.IsDir() {
		s.logger.Error("repository path is not a directory",
			zap.String("path", s.config.RepoPath))
		return fmt.Errorf("%w: %s is not a directory", ErrPathInaccessible, s.config.RepoPath)
	}

	if _, err := git.PlainOpen(s.config.RepoPath); err != nil {
		s.logger.Error("repository path is not a working tree",
			zap.String("path", s.config.RepoPath), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	return nil
}

// Stage stages every change under the given path, relative to the working
// tree root. Changes elsewhere in the tree are left alone.
func (s *Service) Stage(_ context.Context, path string) error {
	s.logger.Debug("staging path", zap.String("path", path))

	worktree, err := s.worktree()
	if err != nil {
		return err
	}

	if _, err := worktree.Add(filepath.ToSlash(path)); err != nil {
		s.logger.Error("failed to stage path", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrStageFailed, err)
	}

	return nil
}

// StagedFiles returns the sorted paths currently staged for commit. An empty
// result means there is nothing to commit.
func (s *Service) StagedFiles(_ context.Context) ([]string, error) {
	worktree, err := s.worktree()
	if err != nil {
		return nil, err
	}

	status, err := worktree.Status()
	if err != nil {
		s.logger.Error("failed to get worktree status", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStageFailed, err)
	}

	var files []string
	for path, fileStatus := range status {
		if fileStatus.Staging == git.Unmodified || fileStatus.Staging == git.Untracked {
			continue
		}
		files = append(files, path)
	}
	sort.Strings(files)

	return files, nil
}

// Commit commits the staged changes with the given message.
func (s *Service) Commit(_ context.Context, message string) (Commit, error) {
	worktree, err := s.worktree()
	if err != nil {
		return Commit{}, err
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  s.config.AuthorName,
			Email: s.config.AuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		s.logger.Error("failed to commit", zap.Error(err))
		return Commit{}, fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	s.logger.Info("committed staged changes", zap.String("hash", hash.String()))

	return Commit{Hash: hash.String(), Message: message}, nil
}

// Remotes lists the configured remotes, used for push failure diagnostics.
func (s *Service) Remotes(_ context.Context) ([]Remote, error) {
	repo, err := git.PlainOpen(s.config.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		result = append(result, Remote{Name: cfg.Name, URLs: cfg.URLs})
	}

	return result, nil
}

// Push pushes the configured branch to the configured remote. An up-to-date
// remote is not an error.
func (s *Service) Push(ctx context.Context) error {
	repo, err := git.PlainOpen(s.config.RepoPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	refSpec := gitconfig.RefSpec(
		fmt.Sprintf("refs/heads/%s:refs/heads/%s", s.config.Branch, s.config.Branch),
	)

	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: s.config.Remote,
		RefSpecs:   []gitconfig.RefSpec{refSpec},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		s.logger.Error("failed to push",
			zap.String("remote", s.config.Remote),
			zap.String("branch", s.config.Branch),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	s.logger.Info("pushed to remote",
		zap.String("remote", s.config.Remote),
		zap.String("branch", s.config.Branch))

	return nil
}

func (s *Service) worktree() (*git.Worktree, error) {
	repo, err := git.PlainOpen(s.config.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	return worktree, nil
}
