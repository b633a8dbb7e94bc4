package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const gitDir = ".git"

// Service computes content fingerprints of a monitored file or directory.
type Service struct {
	exclude map[string]struct{}

	logger *zap.Logger
}

func NewService(config Config, logger *zap.Logger) *Service {
	exclude := make(map[string]struct{}, len(config.Exclude))
	for _, name := range config.Exclude {
		exclude[name] = struct{}{}
	}

	return &Service{
		exclude: exclude,
		logger:  logger,
	}
}

// Fingerprint returns a hex digest summarizing the content of target.
//
// A regular file hashes to the digest of its contents. A directory hashes
// to a digest over the sorted (digest, path) list of every regular file
// beneath it, so the result does not depend on enumeration order. A missing
// target yields the empty string, which callers treat as "state unknown"
// rather than as a distinct content state.
func (s *Service) Fingerprint(target string) (string, error) {
	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		s.logger.Debug("target does not exist", zap.String("target", target))
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat target: %w", err)
	}

	if info.Mode().IsRegular() {
		return s.fileDigest(target)
	}

	return s.treeDigest(target)
}

func (s *Service) fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type entry struct {
	path   string
	digest string
}

func (s *Service) treeDigest(root string) (string, error) {
	var entries []entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if name == gitDir {
				return filepath.SkipDir
			}
			if _, skip := s.exclude[name]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if _, skip := s.exclude[name]; skip {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		digest, hashErr := s.fileDigest(path)
		if hashErr != nil {
			return hashErr
		}

		entries = append(entries, entry{path: filepath.ToSlash(rel), digest: digest})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].path < entries[j].path })

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s\n", e.digest, e.path)
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:]), nil
}
