package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestInit(t *testing.T) {
	t.Run("creates_repository", func(t *testing.T) {
		requireGit(t)

		dir := t.TempDir()
		g := NewInitializer(nil)

		if err := g.Init(context.Background(), dir); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
			t.Errorf(".git directory not created: %v", err)
		}
	})

	t.Run("cancelled_context", func(t *testing.T) {
		requireGit(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := NewInitializer(nil)
		if err := g.Init(ctx, t.TempDir()); err == nil {
			t.Error("expected error with cancelled context")
		}
	})
}

func TestCommitAll(t *testing.T) {
	t.Run("commits_staged_files", func(t *testing.T) {
		requireGit(t)

		dir := t.TempDir()
		ctx := context.Background()
		g := NewInitializer(nil)

		if err := g.Init(ctx, dir); err != nil {
			t.Fatalf("Init() error = %v", err)
		}

		// Commit identity is required in bare CI environments.
		for _, kv := range [][2]string{
			{"user.email", "test@example.com"},
			{"user.name", "test"},
		} {
			if _, err := execGit(ctx, dir, "config", kv[0], kv[1]); err != nil {
				t.Fatalf("git config: %v", err)
			}
		}

		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := g.CommitAll(ctx, dir, "initial commit"); err != nil {
			t.Fatalf("CommitAll() error = %v", err)
		}

		out, err := execGit(ctx, dir, "log", "--oneline")
		if err != nil {
			t.Fatalf("git log: %v", err)
		}
		if out == "" {
			t.Error("expected at least one commit")
		}
	})
}
