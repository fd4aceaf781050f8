// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taskerdev/tasker/internal/task"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.json")
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("shows help with -help flag", func(t *testing.T) {
		if err := Run(ctx, []string{"-help"}); err != nil {
			t.Errorf("expected no error with -help, got %v", err)
		}
	})

	t.Run("shows help with -h flag", func(t *testing.T) {
		if err := Run(ctx, []string{"-h"}); err != nil {
			t.Errorf("expected no error with -h, got %v", err)
		}
	})

	t.Run("shows version", func(t *testing.T) {
		if err := Run(ctx, []string{"-version"}); err != nil {
			t.Errorf("expected no error with -version, got %v", err)
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		if err := Run(ctx, []string{"-bogus"}); err == nil {
			t.Error("expected error for unknown flag, got nil")
		}
	})

	t.Run("add creates a task", func(t *testing.T) {
		path := storePath(t)
		err := Run(ctx, []string{"-file", path, "-add", "Buy milk", "-priority", "2", "-due", "12/25/2025"})
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		s, err := task.Open(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		got := s.List()
		if len(got) != 1 {
			t.Fatalf("tasks: got %d, want 1", len(got))
		}
		if got[0].ID != 1 || got[0].Name != "Buy milk" || got[0].Priority != 2 {
			t.Errorf("task: got %+v", got[0])
		}
		if got[0].DueString() != "12/25/2025" {
			t.Errorf("due: got %q, want 12/25/2025", got[0].DueString())
		}
	})

	t.Run("add with malformed due date fails", func(t *testing.T) {
		path := storePath(t)
		err := Run(ctx, []string{"-file", path, "-add", "Buy milk", "-due", "25/12/2025"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var pe *task.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("expected *ParseError, got %v", err)
		}
	})

	t.Run("add with bad priority fails", func(t *testing.T) {
		path := storePath(t)
		err := Run(ctx, []string{"-file", path, "-add", "Buy milk", "-priority", "5"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "priority") {
			t.Errorf("error: got %v, want mention of priority", err)
		}
	})

	t.Run("done completes a task", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path, "-add", "Buy milk"}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Run(ctx, []string{"-file", path, "-done", "1"}); err != nil {
			t.Fatalf("done failed: %v", err)
		}

		s, err := task.Open(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		if got := s.List(); len(got) != 0 {
			t.Errorf("open tasks: got %d, want 0", len(got))
		}
	})

	t.Run("done on missing id is not an error", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path, "-done", "42"}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("delete removes a task", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path, "-add", "Buy milk"}); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Run(ctx, []string{"-file", path, "-delete", "1"}); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		s, err := task.Open(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		if s.Len() != 0 {
			t.Errorf("tasks: got %d, want 0", s.Len())
		}
	})

	t.Run("add wins over other operations", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path, "-add", "Buy milk", "-list"}); err != nil {
			t.Fatalf("run failed: %v", err)
		}

		s, err := task.Open(path)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		if s.Len() != 1 {
			t.Errorf("tasks: got %d, want 1", s.Len())
		}
	})

	t.Run("query without terms fails", func(t *testing.T) {
		path := storePath(t)
		err := Run(ctx, []string{"-file", path, "-query"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "search term") {
			t.Errorf("error: got %v, want mention of search term", err)
		}
	})

	t.Run("list on missing store succeeds", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path, "-list"}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("corrupt store surfaces an error", func(t *testing.T) {
		path := storePath(t)
		if err := os.WriteFile(path, []byte("not json\n"), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		err := Run(ctx, []string{"-file", path, "-list"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var ce *task.CorruptStoreError
		if !errors.As(err, &ce) {
			t.Errorf("expected *CorruptStoreError, got %v", err)
		}
	})

	t.Run("no operation prints usage without touching the store", func(t *testing.T) {
		path := storePath(t)
		if err := Run(ctx, []string{"-file", path}); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}
