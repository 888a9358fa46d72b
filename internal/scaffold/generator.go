//file: internal/scaffold/generator.go

package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"psforge/internal/identity"
)

//go:embed templates/function.ps1.tmpl
var templateFS embed.FS

const defaultTemplatePath = "templates/function.ps1.tmpl"

// Options carries the fixed fields stamped into every artifact.
type Options struct {
	MinimumVersion string
	Version        string
}

// Generator renders advanced-function scaffolds. It holds only the parsed
// template and its options, so one instance is safe for concurrent use.
type Generator struct {
	tmpl     *template.Template
	identity identity.Provider
	opts     Options
}

// templateData is what the scaffold template renders from. The parameter
// block and help stubs arrive pre-rendered so the template stays a plain
// layout description.
type templateData struct {
	MinimumVersion string
	Name           string
	Synopsis       string
	Description    string
	ParameterHelp  string
	Version        string
	Author         string
	CmdletBinding  string
	Declarations   string
	BeginCode      string
	ProcessCode    string
	EndCode        string
}

// NewGenerator builds a generator around the embedded default template.
func NewGenerator(provider identity.Provider, opts Options) (*Generator, error) {
	src, err := DefaultTemplate()
	if err != nil {
		return nil, err
	}
	return newGenerator(src, provider, opts)
}

// NewGeneratorFromFile builds a generator around a caller-supplied template,
// for teams that keep a customized scaffold shape.
func NewGeneratorFromFile(path string, provider identity.Provider, opts Options) (*Generator, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return newGenerator(string(src), provider, opts)
}

func newGenerator(src string, provider identity.Provider, opts Options) (*Generator, error) {
	if provider == nil {
		return nil, fmt.Errorf("identity provider is required")
	}
	if opts.MinimumVersion == "" {
		opts.MinimumVersion = "2.0"
	}
	if opts.Version == "" {
		opts.Version = "0.1"
	}

	// Sprig gives custom templates their function library; the default
	// template uses none, keeping its output a pure function of the input.
	tmpl, err := template.New("function").Funcs(sprig.TxtFuncMap()).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scaffold template: %w", err)
	}

	return &Generator{tmpl: tmpl, identity: provider, opts: opts}, nil
}

// DefaultTemplate returns the embedded template source.
func DefaultTemplate() (string, error) {
	src, err := templateFS.ReadFile(defaultTemplatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template: %w", err)
	}
	return string(src), nil
}

// Generate renders the scaffold for req. The whole transform is one pass
// request -> text; nothing is persisted, and on error no partial artifact
// is returned. Caller snippets are spliced verbatim and never validated.
func (g *Generator) Generate(req Request) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", fmt.Errorf("command name is required")
	}

	params, err := NormalizeParameters(req.Parameters)
	if err != nil {
		return "", err
	}

	author, err := g.identity.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve author identity: %w", err)
	}

	binding := ""
	if req.SupportsShouldProcess {
		binding = "SupportsShouldProcess=$True"
	}

	data := templateData{
		MinimumVersion: g.opts.MinimumVersion,
		Name:           req.Name,
		Synopsis:       req.Synopsis,
		Description:    req.Description,
		ParameterHelp:  renderParameterHelp(params),
		Version:        g.opts.Version,
		Author:         author,
		CmdletBinding:  binding,
		Declarations:   renderDeclarations(params),
		BeginCode:      req.BeginCode,
		ProcessCode:    req.ProcessCode,
		EndCode:        req.EndCode,
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render scaffold: %w", err)
	}
	return buf.String(), nil
}
