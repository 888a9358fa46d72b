//file: internal/checker/checker.go

// Package checker validates parameter spec files without generating
// anything.
package checker

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"psforge/internal/logger"
	"psforge/internal/scaffold"
)

// Result records the outcome for a single spec file.
type Result struct {
	File       string `json:"file"`
	Passed     bool   `json:"passed"`
	Parameters int    `json:"parameters,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Summary aggregates results for a batch run.
type Summary struct {
	Total   int      `json:"total"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Results []Result `json:"results"`
}

// Checker validates spec files by running them through the same loading and
// normalization the generator uses.
type Checker struct {
	loader *scaffold.SpecLoader
	logger *logger.Logger
}

// New creates a checker.
func New(log *logger.Logger) *Checker {
	return &Checker{
		loader: scaffold.NewSpecLoader(log),
		logger: log,
	}
}

// CheckPaths validates every given path. Directories are walked for
// *.yaml, *.yml and *.json files; plain files are checked as given.
func (c *Checker) CheckPaths(paths []string) (*Summary, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := collectSpecFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}

	summary := &Summary{Results: make([]Result, 0, len(files))}
	for _, file := range files {
		result := c.checkFile(file)
		summary.Total++
		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
			c.logger.Debug("spec check failed", "file", file, "error", result.Error)
		}
		summary.Results = append(summary.Results, result)
	}
	return summary, nil
}

// checkFile loads and normalizes one spec file.
func (c *Checker) checkFile(path string) Result {
	spec, err := c.loader.LoadFromFile(path)
	if err != nil {
		return Result{File: path, Error: err.Error()}
	}
	params, err := scaffold.NormalizeParameters(spec)
	if err != nil {
		return Result{File: path, Error: err.Error()}
	}
	return Result{File: path, Passed: true, Parameters: len(params)}
}

// collectSpecFiles walks dir for spec files in any supported format.
func collectSpecFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return files, nil
}

// Report prints per-file pass/fail lines and a closing count.
func (s *Summary) Report(w io.Writer) {
	for _, r := range s.Results {
		if r.Passed {
			fmt.Fprintf(w, "✓ PASS: %s (%d parameters)\n", r.File, r.Parameters)
		} else {
			fmt.Fprintf(w, "✖ FAIL: %s\n  Error: %s\n", r.File, r.Error)
		}
	}
	fmt.Fprintf(w, "\n%d checked: %d passed, %d failed\n", s.Total, s.Passed, s.Failed)
}

// ReportJSON writes the machine-readable summary.
func (s *Summary) ReportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// HasFailures reports whether any file failed, for process exit status.
func (s *Summary) HasFailures() bool {
	return s.Failed > 0
}
