//file: internal/cli/prompt_test.go
package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdinPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterWithIO(strings.NewReader("  hello world  \n"), &out)

	got, err := p.Ask("Question?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected trimmed input, got %q", got)
	}
	if !strings.Contains(out.String(), "Question?") {
		t.Error("expected the question to be written to the output stream")
	}
}

func TestStdinPrompter_AskWithDefault(t *testing.T) {
	t.Run("empty input returns the default", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompterWithIO(strings.NewReader("\n"), &out)

		got, err := p.AskWithDefault("Value", "fallback")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "fallback" {
			t.Errorf("expected fallback, got %q", got)
		}
		if !strings.Contains(out.String(), "[fallback]") {
			t.Error("expected the default to be shown in the question")
		}
	})

	t.Run("input overrides the default", func(t *testing.T) {
		p := NewPrompterWithIO(strings.NewReader("custom\n"), &bytes.Buffer{})

		got, err := p.AskWithDefault("Value", "fallback")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "custom" {
			t.Errorf("expected custom, got %q", got)
		}
	})
}

func TestStdinPrompter_Confirm(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"yes\n", false},
	}

	for _, tc := range cases {
		p := NewPrompterWithIO(strings.NewReader(tc.input), &bytes.Buffer{})
		got, err := p.Confirm("Proceed?")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestStdinPrompter_Select(t *testing.T) {
	t.Run("valid choice returns zero-based index", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompterWithIO(strings.NewReader("2\n"), &out)

		got, err := p.Select("Pick one:", []string{"alpha", "beta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("expected index 1, got %d", got)
		}
		if !strings.Contains(out.String(), "1) alpha") || !strings.Contains(out.String(), "2) beta") {
			t.Error("expected numbered options in the output")
		}
	})

	t.Run("invalid choice is re-asked", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompterWithIO(strings.NewReader("5\nzero\n1\n"), &out)

		got, err := p.Select("Pick one:", []string{"alpha", "beta"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Errorf("expected index 0, got %d", got)
		}
		if !strings.Contains(out.String(), "Invalid option") {
			t.Error("expected an invalid-option hint")
		}
	})
}
