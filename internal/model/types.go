package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Alignment selects how each output line (slug) is post-processed after
// greedy word packing.
//
// The mode is chosen once per run and never changes while lines are
// being processed.
type Alignment string

const (
	// AlignLeft emits slugs exactly as packed, without any padding.
	AlignLeft Alignment = "left"

	// AlignRight prepends spaces so every slug ends at the target width.
	AlignRight Alignment = "right"

	// AlignCenter splits the padding between both sides of every slug.
	// The odd extra space, if any, goes to the right.
	AlignCenter Alignment = "center"

	// AlignJustify stretches interior spacing of every slug except the last
	// one of an input line so that it fills the target width.
	AlignJustify Alignment = "justify"
)

// String returns the string representation of Alignment.
func (a Alignment) String() string {
	return string(a)
}

// IsValid checks whether the Alignment value is one of the
// predefined modes.
func (a Alignment) IsValid() bool {
	switch a {
	case AlignLeft, AlignRight, AlignCenter, AlignJustify:
		return true
	default:
		return false
	}
}

// ParseAlignment converts a mode keyword to an Alignment.
// Matching is case-sensitive: the positional CLI surface only accepts the
// lower-case keywords, and a capitalised token must fall through to width
// parsing (and fail there).
func ParseAlignment(s string) (Alignment, error) {
	a := Alignment(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid alignment %q (valid: left, right, center, justify)", s)
	}
	return a, nil
}

// Width bounds. The engine itself only requires width >= 1; the upper
// bound mirrors the single-byte column counter of the classic tool.
const (
	// MinWidth is the smallest accepted column target.
	MinWidth = 1

	// MaxWidth is the largest accepted column target.
	MaxWidth = 255

	// DefaultWidth is used when no width is supplied.
	DefaultWidth = 72
)

// DefaultAlignment is used when no mode keyword is supplied.
const DefaultAlignment = AlignJustify

// ValidateWidth checks that width lies within [MinWidth, MaxWidth].
func ValidateWidth(width int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("width %d out of range (%d-%d)", width, MinWidth, MaxWidth)
	}
	return nil
}

// ParseWidth converts a decimal token to a validated width.
// Leading '+' signs and surrounding whitespace are rejected so that only
// plain column numbers are accepted.
func ParseWidth(s string) (int, error) {
	if s == "" || strings.TrimSpace(s) != s || strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("invalid width %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid width %q", s)
	}
	if err := ValidateWidth(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ExitCode defines the process exit codes of the align CLI.
// Scripts can rely on these values to tell argument errors apart from
// configuration errors.
type ExitCode int

const (
	// ExitSuccess indicates all input was processed.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers invalid positional tokens, unknown flags
	// and I/O failures while streaming.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the --config profile could not be read
	// or contained invalid values.
	ExitConfigError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
