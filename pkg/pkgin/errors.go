package pkgin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommandFailed indicates pkgin exited with a non-zero status
	ErrCommandFailed = errors.New("pkgin command failed")

	// ErrMalformedOutput indicates a line did not follow the verb's output grammar
	ErrMalformedOutput = errors.New("malformed pkgin output")

	// ErrBinaryNotFound indicates no pkgin executable could be located
	ErrBinaryNotFound = errors.New("pkgin binary not found")

	// ErrInvalidPackage indicates an empty or otherwise unusable package argument
	ErrInvalidPackage = errors.New("invalid package")
)

// CommandError carries the stderr text of a failed pkgin invocation
type CommandError struct {
	Args     []string // Argument vector, binary excluded
	ExitCode int
	Stderr   string // Trailing newline removed
}

func (e *CommandError) Error() string {
	return e.Stderr
}

// Is reports CommandError as ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

func newCommandError(args []string, exitCode int, stderr []byte) *CommandError {
	return &CommandError{
		Args:     args,
		ExitCode: exitCode,
		Stderr:   strings.TrimSuffix(string(stderr), "\n"),
	}
}

// ParseError wraps a grammar violation with the verb and offending line
type ParseError struct {
	Op   string // Verb whose output was being parsed
	Line string // Offending line
	Err  error  // Underlying error
}

func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
