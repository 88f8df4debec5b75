package placement

import (
	"errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is against the typed errors below
var (
	ErrFormat     = errors.New("placement: invalid format")
	ErrValidation = errors.New("placement: validation failed")
	ErrMerge      = errors.New("placement: cannot merge")
)

// FormatError reports a string matching neither "<block>-<n>" nor "<block>-<n>-<n>"
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("placement: %q is not <block>-<number> or <block>-<number>-<number>", e.Input)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ValidationError reports a well-formed code with semantically invalid fields
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("placement: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// MergeError reports two positions that do not form a double-space booth
type MergeError struct {
	A, B   string
	Reason string
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("placement: cannot merge %q and %q: %s", e.A, e.B, e.Reason)
}

func (e *MergeError) Is(target error) bool { return target == ErrMerge }
