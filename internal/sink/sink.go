//file: internal/sink/sink.go

// Package sink delivers generated scaffolds to their destination: an
// output stream, a file, the user's editor, or a NATS subject.
package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact is one generated scaffold ready for delivery.
type Artifact struct {
	Name    string
	Content string
}

// Sink delivers artifacts somewhere.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, artifact Artifact) error
}

// WriterSink writes artifact content to a stream, usually stdout.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink around w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Name() string { return "stdout" }

func (s *WriterSink) Deliver(_ context.Context, artifact Artifact) error {
	if _, err := io.WriteString(s.w, artifact.Content); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}

// FileSink writes the artifact to a path on disk, creating parent
// directories as needed. An existing directory path stores the artifact
// under it as <Name>.ps1.
type FileSink struct {
	path string
}

// NewFileSink creates a sink that writes to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string { return s.path }

// Target resolves the file an artifact named name would be written to.
func (s *FileSink) Target(name string) string {
	if info, err := os.Stat(s.path); err == nil && info.IsDir() {
		return filepath.Join(s.path, artifactFileName(name))
	}
	return s.path
}

func (s *FileSink) Deliver(_ context.Context, artifact Artifact) error {
	target := s.Target(artifact.Name)
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(target, []byte(artifact.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// artifactFileName derives a safe on-disk file name for an artifact.
func artifactFileName(name string) string {
	base := filepath.Base(name)
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "scaffold"
	}
	return base + ".ps1"
}
