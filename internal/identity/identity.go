//file: internal/identity/identity.go

// Package identity resolves the author stamped into generated scaffolds.
package identity

import (
	"fmt"
	"os"
	"os/user"
)

// Provider resolves the author identity recorded in a scaffold's notes
// block. The generator treats it as an opaque lookup so the rendering
// itself stays a pure function of its input.
type Provider interface {
	Current() (string, error)
}

// EnvProvider resolves the author from the execution environment,
// preferring the OS account name and falling back to the USERNAME/USER
// environment variables.
type EnvProvider struct{}

func (EnvProvider) Current() (string, error) {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username, nil
	}
	for _, key := range []string{"USERNAME", "USER"} {
		if name := os.Getenv(key); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("cannot resolve current user: no OS account and no USERNAME/USER set")
}

// Static is a fixed identity, for config overrides and deterministic
// output in tests.
type Static string

func (s Static) Current() (string, error) {
	return string(s), nil
}
