// Package placement parses and normalizes venue booth codes such as "A-01" and "A-01-02"
package placement

import (
	"regexp"
	"strconv"
	"strings"
)

// codePattern: block is any non-hyphen run, numbers are ASCII digit runs
var codePattern = regexp.MustCompile(`^([^-]+)-([0-9]+)(?:-([0-9]+))?$`)

// Code is a parsed placement code
// Number2 is empty for single-space booths
type Code struct {
	Block   string
	Number1 string
	Number2 string
}

// IsDouble reports whether the code spans two booths
func (c Code) IsDouble() bool {
	return c.Number2 != ""
}

// String renders the canonical block-n1[-n2] form, preserving zero padding
func (c Code) String() string {
	if c.Number2 == "" {
		return c.Block + "-" + c.Number1
	}
	return c.Block + "-" + c.Number1 + "-" + c.Number2
}

// Parse reads a single or double-space code
// Surrounding whitespace is ignored; no semantic validation is done here, see Normalize
func Parse(code string) (Code, error) {
	s := strings.TrimSpace(code)
	m := codePattern.FindStringSubmatch(s)
	if m == nil {
		return Code{}, &FormatError{Input: code}
	}
	return Code{Block: m[1], Number1: m[2], Number2: m[3]}, nil
}

// ParsePositions parses a comma or whitespace separated list of codes
// Stops at the first malformed entry
func ParsePositions(raw string) ([]Code, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	codes := make([]Code, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// atoi converts a digit run, rejecting anything else
func atoi(field, s string) (int, error) {
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "empty"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, &ValidationError{Field: field, Reason: "not a digit run: " + strconv.Quote(s)}
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: err.Error()}
	}
	return n, nil
}

// Number returns the integer value of a booth number string, and false if it is not a digit run
func Number(s string) (int, bool) {
	n, err := atoi("number", s)
	return n, err == nil
}
