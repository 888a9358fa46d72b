//file: internal/checker/checker_test.go

package checker

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"psforge/internal/logger"
)

func newTestChecker() *Checker {
	return New(logger.NewNopLogger())
}

func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create spec directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write spec file: %v", err)
	}
	return path
}

func TestCheckPaths(t *testing.T) {
	t.Run("valid file passes with parameter count", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSpec(t, dir, "good.yaml", "Name: string\nPath: [string, true]\n")

		summary, err := newTestChecker().CheckPaths([]string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total != 1 || summary.Passed != 1 || summary.Failed != 0 {
			t.Fatalf("unexpected summary %+v", summary)
		}
		r := summary.Results[0]
		if !r.Passed || r.Parameters != 2 || r.Error != "" {
			t.Errorf("unexpected result %+v", r)
		}
	})

	t.Run("invalid spec fails with the offending parameter", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSpec(t, dir, "bad.yaml", "Name: []\n")

		summary, err := newTestChecker().CheckPaths([]string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Failed != 1 {
			t.Fatalf("expected one failure, got %+v", summary)
		}
		r := summary.Results[0]
		if r.Passed {
			t.Error("expected the file to fail")
		}
		if !strings.Contains(r.Error, "Name") {
			t.Errorf("expected error to name the parameter, got %q", r.Error)
		}
	})

	t.Run("non-mapping document fails", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSpec(t, dir, "list.yaml", "- one\n- two\n")

		summary, err := newTestChecker().CheckPaths([]string{path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Failed != 1 {
			t.Fatalf("expected one failure, got %+v", summary)
		}
	})

	t.Run("directories are walked recursively for spec files", func(t *testing.T) {
		dir := t.TempDir()
		writeSpec(t, dir, "good.yaml", "Name: string\n")
		writeSpec(t, dir, "also.json", `{"Path": "string"}`)
		writeSpec(t, dir, filepath.Join("nested", "deep.yml"), "Id: int\n")
		writeSpec(t, dir, "notes.txt", "not a spec")

		summary, err := newTestChecker().CheckPaths([]string{dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total != 3 {
			t.Fatalf("expected 3 spec files checked, got %d", summary.Total)
		}
		if summary.Passed != 3 {
			t.Errorf("expected all to pass, got %+v", summary)
		}
	})

	t.Run("mixed pass and fail counts", func(t *testing.T) {
		dir := t.TempDir()
		writeSpec(t, dir, "good.yaml", "Name: string\n")
		writeSpec(t, dir, "bad.json", `{"Name": 42}`)

		summary, err := newTestChecker().CheckPaths([]string{dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.Total != 2 || summary.Passed != 1 || summary.Failed != 1 {
			t.Errorf("unexpected summary %+v", summary)
		}
		if !summary.HasFailures() {
			t.Error("expected HasFailures to be true")
		}
	})

	t.Run("missing path is an error", func(t *testing.T) {
		_, err := newTestChecker().CheckPaths([]string{filepath.Join(t.TempDir(), "absent.yaml")})
		if err == nil {
			t.Fatal("expected error for missing path")
		}
		if !strings.Contains(err.Error(), "failed to stat") {
			t.Errorf("unexpected error message: %q", err.Error())
		}
	})
}

func TestSummaryReport(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "good.yaml", "Name: string\n")
	writeSpec(t, dir, "bad.yaml", "Name: []\n")

	summary, err := newTestChecker().CheckPaths([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	summary.Report(&buf)
	out := buf.String()

	if !strings.Contains(out, "✓ PASS") {
		t.Error("expected a PASS line")
	}
	if !strings.Contains(out, "✖ FAIL") {
		t.Error("expected a FAIL line")
	}
	if !strings.Contains(out, "2 checked: 1 passed, 1 failed") {
		t.Errorf("expected closing count line, got %q", out)
	}
}

func TestSummaryReportJSON(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "good.yaml", "Name: string\nPath: int\n")

	summary, err := newTestChecker().CheckPaths([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := summary.ReportJSON(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Total != 1 || decoded.Passed != 1 {
		t.Errorf("unexpected decoded summary %+v", decoded)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Parameters != 2 {
		t.Errorf("unexpected decoded results %+v", decoded.Results)
	}
}
