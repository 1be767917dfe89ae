package filewatch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AliRehmantechndev/EdgeMind-backend/pkg/utils/filewatch"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestUntilModifyContext(t *testing.T) {
	t.Run("writing a watched file cancels the context", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, target, "before")

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		writeFile(t, target, "after")

		select {
		case <-ctx.Done():
			// expected
		case <-time.After(5 * time.Second):
			t.Fatal("the context did not cancel on modify")
		}
	})

	t.Run("removing a watched file cancels the context", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, target, "content")

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		if err := os.Remove(target); err != nil {
			t.Fatal(err)
		}

		select {
		case <-ctx.Done():
			// expected
		case <-time.After(5 * time.Second):
			t.Fatal("the context did not cancel on remove")
		}
	})

	t.Run("an untouched file leaves the context alive", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, target, "content")

		ctx, cancel, err := filewatch.UntilModifyContext(context.Background(), target)
		if err != nil {
			t.Fatal(err)
		}
		defer cancel()

		select {
		case <-ctx.Done():
			t.Fatal("the context canceled without any modification")
		case <-time.After(100 * time.Millisecond):
			// expected
		}
	})

	t.Run("a missing target is an error", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "no-such-file")

		if _, _, err := filewatch.UntilModifyContext(context.Background(), missing); err == nil {
			t.Error("watching a missing file succeeded")
		}
	})
}
