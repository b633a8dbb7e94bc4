package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gitpulse/gitpulse/internal/history"
	"go.uber.org/zap"
)

// Service owns the fingerprint baseline and drives the poll loop. One
// detected change runs one cycle: stage, commit, push, notify. A cycle
// failure aborts that cycle only; the loop never stops.
type Service struct {
	config Config

	hasher  Hasher
	repo    Repository
	sender  Sender
	history *history.Service

	logger *zap.Logger

	mu       sync.RWMutex
	baseline string
}

func NewService(
	config Config,
	hasher Hasher,
	repo Repository,
	sender Sender,
	historySvc *history.Service,
	logger *zap.Logger,
) *Service {
	return &Service{
		config:  config,
		hasher:  hasher,
		repo:    repo,
		sender:  sender,
		history: historySvc,
		logger:  logger,
	}
}

// Baseline returns the fingerprint the next poll is compared against.
func (s *Service) Baseline() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline
}

// Target returns the monitored path relative to the working tree.
func (s *Service) Target() string {
	return s.config.Target
}

// Interval returns the configured poll interval.
func (s *Service) Interval() time.Duration {
	return s.config.Interval
}

func (s *Service) setBaseline(fp string) {
	s.mu.Lock()
	s.baseline = fp
	s.mu.Unlock()
}

func (s *Service) targetPath() string {
	return filepath.Join(s.config.RepoPath, s.config.Target)
}

// Run polls until ctx is cancelled. Cycles run strictly sequentially; the
// next wait only starts after the current cycle fully resolves.
func (s *Service) Run(ctx context.Context) {
	initial, err := s.hasher.Fingerprint(s.targetPath())
	if err != nil {
		s.logger.Warn("failed to compute initial fingerprint", zap.Error(err))
	}
	s.setBaseline(initial)

	s.logger.Info("watch loop started",
		zap.String("target", s.config.Target),
		zap.Duration("interval", s.config.Interval),
		zap.String("fingerprint", initial))

	var nudge <-chan struct{}
	if s.config.FSEvents {
		notifier, nErr := newNotifier(s.targetPath(), s.logger)
		if nErr != nil {
			s.logger.Warn("filesystem events unavailable, relying on polling alone", zap.Error(nErr))
		} else {
			defer notifier.Close()
			nudge = notifier.C
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("watch loop stopped")
			return
		case <-ticker.C:
		case <-nudge:
		}

		s.tick(ctx)
	}
}

// tick runs one poll: compute the fingerprint, compare against the
// baseline, and if changed run a cycle. The baseline is always resynced to
// the new value, even when the cycle fails, so a failed cycle is never
// retried against the same change.
func (s *Service) tick(ctx context.Context) {
	next, err := s.hasher.Fingerprint(s.targetPath())
	if err != nil {
		s.logger.Warn("failed to fingerprint target", zap.Error(err))
		return
	}

	current := s.Baseline()
	if next == current {
		return
	}

	if next == "" || current == "" {
		// Unknown state on either side of the comparison is not a change.
		s.logger.Warn("monitored target in unknown state, resyncing baseline",
			zap.String("old", current),
			zap.String("new", next))
		s.setBaseline(next)
		return
	}

	s.logger.Info("change detected",
		zap.String("target", s.config.Target),
		zap.String("old", current),
		zap.String("new", next))

	event := ChangeEvent{
		OldFingerprint: current,
		NewFingerprint: next,
		Timestamp:      time.Now().UTC(),
	}
	s.runCycle(ctx, event)

	s.setBaseline(next)
}

func (s *Service) runCycle(ctx context.Context, event ChangeEvent) {
	draft := history.RecordDraft{
		Target:         s.config.Target,
		OldFingerprint: event.OldFingerprint,
		NewFingerprint: event.NewFingerprint,
		DetectedAt:     event.Timestamp,
	}
	defer func() { s.history.Append(ctx, draft) }()

	if err := s.repo.Stage(ctx, s.config.Target); err != nil {
		s.logger.Error("failed to stage monitored target", zap.Error(err))
		draft.Outcome, draft.Error = history.OutcomeStageFailed, err.Error()
		return
	}

	files, err := s.repo.StagedFiles(ctx)
	if err != nil {
		s.logger.Error("failed to check staged changes", zap.Error(err))
		draft.Outcome, draft.Error = history.OutcomeStageFailed, err.Error()
		return
	}
	if len(files) == 0 {
		s.logger.Info("nothing to commit", zap.String("target", s.config.Target))
		draft.Outcome = history.OutcomeNothingToCommit
		return
	}
	event.Files = files
	draft.Files = files

	commitHash, err := s.repo.Commit(ctx, commitMessage(s.config.Target, event))
	if err != nil {
		s.logger.Error("failed to commit change", zap.Error(err))
		draft.Outcome, draft.Error = history.OutcomeCommitFailed, err.Error()
		return
	}
	draft.CommitHash = commitHash

	if err := s.repo.Push(ctx); err != nil {
		s.logger.Error("failed to push change",
			zap.Strings("remotes", s.repo.RemoteInfo(ctx)),
			zap.Error(err))
		draft.Outcome, draft.Error = history.OutcomePushFailed, err.Error()
		return
	}

	if err := s.sender.Send(ctx, emailBody(s.config.Target, commitHash, event)); err != nil {
		// The commit and push stand; a lost email is only a warning.
		s.logger.Warn("failed to send notification", zap.Error(err))
		draft.Outcome, draft.Error = history.OutcomeNotifyFailed, err.Error()
		return
	}

	s.logger.Info("cycle completed",
		zap.String("commit", commitHash),
		zap.Int("files", len(files)))
	draft.Outcome = history.OutcomeCompleted
}

func commitMessage(target string, event ChangeEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "auto: %s changed at %s\n", target, event.Timestamp.Format(time.RFC3339))
	for _, file := range event.Files {
		b.WriteByte('\n')
		b.WriteString(file)
	}
	return b.String()
}

func emailBody(target, commitHash string, event ChangeEvent) string {
	lines := []string{
		fmt.Sprintf("Change detected under %s at %s.", target, event.Timestamp.Format(time.RFC3339)),
		fmt.Sprintf("Committed and pushed as %s.", commitHash),
		"",
		"Changed files:",
	}
	lines = append(lines, event.Files...)
	return strings.Join(lines, "\n")
}
