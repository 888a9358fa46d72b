//file: internal/sink/editor.go

package sink

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"psforge/internal/logger"
)

// EditorSink stages the artifact in a temp file and opens an editor on it.
// When no editor can be resolved the sink reports unavailable and callers
// fall back to direct output.
type EditorSink struct {
	command string
	logger  *logger.Logger
}

// NewEditorSink creates an editor sink around command. An empty command
// falls back to $EDITOR.
func NewEditorSink(command string, log *logger.Logger) *EditorSink {
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	return &EditorSink{command: command, logger: log}
}

func (s *EditorSink) Name() string {
	if s.command == "" {
		return "editor"
	}
	return "editor (" + s.command + ")"
}

// Available reports whether the configured editor can be launched.
func (s *EditorSink) Available() bool {
	if s.command == "" {
		return false
	}
	if _, err := exec.LookPath(strings.Fields(s.command)[0]); err != nil {
		return false
	}
	return true
}

func (s *EditorSink) Deliver(ctx context.Context, artifact Artifact) error {
	if !s.Available() {
		return fmt.Errorf("no editor available (set editor.command or $EDITOR)")
	}

	// The staged file must outlive this process; editors may load it
	// asynchronously.
	dir, err := os.MkdirTemp("", "psforge-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	path := filepath.Join(dir, artifactFileName(artifact.Name))
	if err := os.WriteFile(path, []byte(artifact.Content), 0600); err != nil {
		return fmt.Errorf("failed to stage artifact: %w", err)
	}

	fields := strings.Fields(s.command)
	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	s.logger.Debug("launching editor", "command", s.command, "path", path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}
