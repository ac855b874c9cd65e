package wordml

import "fmt"

// Malformed-but-parseable content never produces an error anywhere in this
// package; the types below cover broken package archives and unparseable
// XML only.

// PackageError reports a failure reading or rewriting the zip package.
type PackageError struct {
	Op    string
	Entry string
	Err   error
}

func (e *PackageError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("package %s %q: %v", e.Op, e.Entry, e.Err)
	}
	return fmt.Sprintf("package %s: %v", e.Op, e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }

// NewPackageError creates a package error for the given operation and entry.
func NewPackageError(op, entry string, err error) error {
	return &PackageError{Op: op, Entry: entry, Err: err}
}

// ParseError reports XML that could not be tokenized at all.
type ParseError struct {
	Part string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Part, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError creates a parse error for the given part.
func NewParseError(part string, err error) error {
	return &ParseError{Part: part, Err: err}
}

// SliceError reports a failure while building a truncated package.
type SliceError struct {
	Units int
	Err   error
}

func (e *SliceError) Error() string {
	return fmt.Sprintf("slice to %d units: %v", e.Units, e.Err)
}

func (e *SliceError) Unwrap() error { return e.Err }

// NewSliceError creates a slice error.
func NewSliceError(units int, err error) error {
	return &SliceError{Units: units, Err: err}
}
