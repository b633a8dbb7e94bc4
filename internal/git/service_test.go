package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap/zaptest"
)

func initTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatal(err)
	}

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		t.Fatal(err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(repoPath, "base.txt"), []byte("base"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := worktree.Add("base.txt"); err != nil {
		t.Fatal(err)
	}

	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	return repoPath, repo
}

func newTestService(t *testing.T, repoPath string) *Service {
	t.Helper()

	config := Config{
		RepoPath:    repoPath,
		Remote:      "origin",
		Branch:      "master",
		AuthorName:  "Test Author",
		AuthorEmail: "test@example.com",
	}
	return NewService(config, zaptest.NewLogger(t))
}

func TestService_Verify(t *testing.T) {
	repoPath, _ := initTestRepo(t)

	service := newTestService(t, repoPath)
	if err := service.Verify(); err != nil {
		t.Fatalf("Verify failed on a valid repo: %v", err)
	}
}

func TestService_VerifyMissingPath(t *testing.T) {
	service := newTestService(t, filepath.Join(t.TempDir(), "nope"))

	err := service.Verify()
	if err == nil {
		t.Fatal("Verify should fail on a missing path")
	}
	if !strings.Contains(err.Error(), ErrPathInaccessible.Error()) {
		t.Errorf("expected path error, got: %v", err)
	}
}

func TestService_VerifyNotARepository(t *testing.T) {
	service := newTestService(t, t.TempDir())

	err := service.Verify()
	if err == nil {
		t.Fatal("Verify should fail on a plain directory")
	}
	if !strings.Contains(err.Error(), ErrNotARepository.Error()) {
		t.Errorf("expected repository error, got: %v", err)
	}
}

func TestService_StageAndCommit(t *testing.T) {
	repoPath, _ := initTestRepo(t)
	service := newTestService(t, repoPath)

	watched := filepath.Join(repoPath, "watched")
	if err := os.MkdirAll(watched, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(watched, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	// An unrelated change outside the watched path must not be staged.
	if err := os.WriteFile(filepath.Join(repoPath, "unrelated.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := service.Stage(context.Background(), "watched"); err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	files, err := service.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("StagedFiles failed: %v", err)
	}

	if len(files) != 1 || files[0] != "watched/a.txt" {
		t.Fatalf("expected only watched/a.txt staged, got %v", files)
	}

	commit, err := service.Commit(context.Background(), "watched changed\n\nwatched/a.txt")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if commit.Hash == "" {
		t.Error("expected commit to have a hash")
	}

	files, err = service.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("StagedFiles failed after commit: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected nothing staged after commit, got %v", files)
	}
}

func TestService_StagedFilesEmpty(t *testing.T) {
	repoPath, _ := initTestRepo(t)
	service := newTestService(t, repoPath)

	files, err := service.StagedFiles(context.Background())
	if err != nil {
		t.Fatalf("StagedFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected clean tree to have nothing staged, got %v", files)
	}
}

func TestService_Push(t *testing.T) {
	repoPath, repo := initTestRepo(t)

	barePath := filepath.Join(t.TempDir(), "remote.git")
	if _, err := git.PlainInit(barePath, true); err != nil {
		t.Fatal(err)
	}

	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{barePath},
	})
	if err != nil {
		t.Fatal(err)
	}

	service := newTestService(t, repoPath)

	if err := service.Push(context.Background()); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	// Pushing again with no new commits must succeed as already up to date.
	if err := service.Push(context.Background()); err != nil {
		t.Fatalf("Push of an up-to-date branch failed: %v", err)
	}
}

func TestService_PushNoRemote(t *testing.T) {
	repoPath, _ := initTestRepo(t)
	service := newTestService(t, repoPath)

	err := service.Push(context.Background())
	if err == nil {
		t.Fatal("Push should fail without a configured remote")
	}

	remotes, err := service.Remotes(context.Background())
	if err != nil {
		t.Fatalf("Remotes failed: %v", err)
	}
	if len(remotes) != 0 {
		t.Errorf("expected no remotes, got %v", remotes)
	}
}
