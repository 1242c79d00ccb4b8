// errors.go
package pkgin

import (
	"github.com/arc-language/pkgin/pkg/pkgin"
)

var (
	// ErrCommandFailed indicates pkgin exited with a non-zero status
	ErrCommandFailed = pkgin.ErrCommandFailed

	// ErrMalformedOutput indicates pkgin printed something the parsers do not understand
	ErrMalformedOutput = pkgin.ErrMalformedOutput

	// ErrBinaryNotFound indicates no pkgin executable could be located
	ErrBinaryNotFound = pkgin.ErrBinaryNotFound

	// ErrInvalidPackage indicates the package argument is invalid
	ErrInvalidPackage = pkgin.ErrInvalidPackage
)

type (
	// CommandError carries pkgin's stderr text
	CommandError = pkgin.CommandError
	// ParseError wraps an output line that broke a verb's grammar
	ParseError = pkgin.ParseError
)
