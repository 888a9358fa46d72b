//file: internal/sink/sink_test.go

package sink

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"psforge/internal/logger"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	if s.Name() != "stdout" {
		t.Errorf("expected name 'stdout', got %q", s.Name())
	}

	artifact := Artifact{Name: "Set-Thing", Content: "Function Set-Thing {\n}\n"}
	if err := s.Deliver(context.Background(), artifact); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != artifact.Content {
		t.Errorf("expected %q written, got %q", artifact.Content, buf.String())
	}
}

func TestFileSink(t *testing.T) {
	t.Run("writes file and creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "nested", "Set-Thing.ps1")
		s := NewFileSink(path)

		if s.Name() != path {
			t.Errorf("expected name %q, got %q", path, s.Name())
		}

		artifact := Artifact{Name: "Set-Thing", Content: "scaffold body\n"}
		if err := s.Deliver(context.Background(), artifact); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read delivered file: %v", err)
		}
		if string(data) != artifact.Content {
			t.Errorf("expected %q, got %q", artifact.Content, string(data))
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Set-Thing.ps1")
		s := NewFileSink(path)

		if err := s.Deliver(context.Background(), Artifact{Content: "first"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Deliver(context.Background(), Artifact{Content: "second"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read delivered file: %v", err)
		}
		if string(data) != "second" {
			t.Errorf("expected overwritten content, got %q", string(data))
		}
	})

	t.Run("directory target stores artifact as Name.ps1", func(t *testing.T) {
		dir := t.TempDir()
		s := NewFileSink(dir)

		want := filepath.Join(dir, "Set-Thing.ps1")
		if got := s.Target("Set-Thing"); got != want {
			t.Errorf("Target() = %q, want %q", got, want)
		}

		if err := s.Deliver(context.Background(), Artifact{Name: "Set-Thing", Content: "body\n"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("failed to read delivered file: %v", err)
		}
		if string(data) != "body\n" {
			t.Errorf("expected %q, got %q", "body\n", string(data))
		}
	})

	t.Run("directory target with empty artifact name falls back", func(t *testing.T) {
		dir := t.TempDir()
		s := NewFileSink(dir)

		if got, want := s.Target(""), filepath.Join(dir, "scaffold.ps1"); got != want {
			t.Errorf("Target() = %q, want %q", got, want)
		}
	})
}

func TestEditorSink_Available(t *testing.T) {
	t.Run("unavailable without command or EDITOR", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		s := NewEditorSink("", logger.NewNopLogger())
		if s.Available() {
			t.Error("expected unavailable with no editor configured")
		}
		if s.Name() != "editor" {
			t.Errorf("expected bare name 'editor', got %q", s.Name())
		}
	})

	t.Run("falls back to EDITOR environment", func(t *testing.T) {
		t.Setenv("EDITOR", "vi")
		s := NewEditorSink("", logger.NewNopLogger())
		if s.Name() != "editor (vi)" {
			t.Errorf("expected name 'editor (vi)', got %q", s.Name())
		}
	})

	t.Run("unavailable when binary is missing", func(t *testing.T) {
		s := NewEditorSink("psforge-no-such-editor-binary", logger.NewNopLogger())
		if s.Available() {
			t.Error("expected unavailable for a missing binary")
		}
	})

	t.Run("available when binary exists", func(t *testing.T) {
		if _, err := exec.LookPath("true"); err != nil {
			t.Skip("true binary not on PATH")
		}
		s := NewEditorSink("true", logger.NewNopLogger())
		if !s.Available() {
			t.Error("expected available for a resolvable binary")
		}
	})
}

func TestEditorSink_Deliver(t *testing.T) {
	t.Run("launches editor on staged file", func(t *testing.T) {
		if _, err := exec.LookPath("true"); err != nil {
			t.Skip("true binary not on PATH")
		}
		s := NewEditorSink("true", logger.NewNopLogger())
		artifact := Artifact{Name: "Set-Thing", Content: "body\n"}
		if err := s.Deliver(context.Background(), artifact); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fails when unavailable", func(t *testing.T) {
		s := NewEditorSink("psforge-no-such-editor-binary", logger.NewNopLogger())
		err := s.Deliver(context.Background(), Artifact{Name: "Set-Thing", Content: "body"})
		if err == nil {
			t.Fatal("expected error for unavailable editor")
		}
		if !strings.Contains(err.Error(), "no editor available") {
			t.Errorf("expected availability error, got %q", err.Error())
		}
	})
}
