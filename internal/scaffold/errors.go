//file: internal/scaffold/errors.go

package scaffold

import (
	"errors"
	"fmt"
)

// InvalidSpecError reports a malformed parameter spec entry. Param names the
// offending mapping key so the caller can fix the input directly. Generation
// aborts on the first one; no partial artifact is ever produced.
type InvalidSpecError struct {
	Param  string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid spec for parameter %q: %s", e.Param, e.Reason)
}

// InvalidInputTypeError reports a parameters argument that is neither a
// plain mapping nor an ordered one. Type describes what was supplied.
type InvalidInputTypeError struct {
	Type string
}

func (e *InvalidInputTypeError) Error() string {
	return fmt.Sprintf("parameters must be a plain or ordered mapping, got %s", e.Type)
}

// IsInvalidSpec reports whether err is an InvalidSpecError.
func IsInvalidSpec(err error) bool {
	var specErr *InvalidSpecError
	return errors.As(err, &specErr)
}

// IsInvalidInputType reports whether err is an InvalidInputTypeError.
func IsInvalidInputType(err error) bool {
	var typeErr *InvalidInputTypeError
	return errors.As(err, &typeErr)
}
