package placement

import (
	"strconv"
)

// Normalized expands a Code into its single-space positions
type Normalized struct {
	Positions     []string // one or two entries, primary first
	IsDoubleSpace bool
	Primary       string
	Secondary     string // empty for single-space
}

// Normalize validates code and returns its single-space positions
// A double-space code must carry consecutive numbers (n2 == n1 + 1)
func Normalize(code Code) (Normalized, error) {
	if code.Block == "" {
		return Normalized{}, &ValidationError{Field: "block", Reason: "empty"}
	}
	n1, err := atoi("number1", code.Number1)
	if err != nil {
		return Normalized{}, err
	}

	primary := code.Block + "-" + code.Number1
	if code.Number2 == "" {
		return Normalized{
			Positions: []string{primary},
			Primary:   primary,
		}, nil
	}

	n2, err := atoi("number2", code.Number2)
	if err != nil {
		return Normalized{}, err
	}
	if n2 != n1+1 {
		return Normalized{}, &ValidationError{
			Field:  "number2",
			Reason: "must follow number1 (" + strconv.Itoa(n1+1) + "), got " + strconv.Itoa(n2),
		}
	}

	secondary := code.Block + "-" + code.Number2
	return Normalized{
		Positions:     []string{primary, secondary},
		IsDoubleSpace: true,
		Primary:       primary,
		Secondary:     secondary,
	}, nil
}

// NormalizeString is Parse followed by Normalize
func NormalizeString(code string) (Normalized, error) {
	c, err := Parse(code)
	if err != nil {
		return Normalized{}, err
	}
	return Normalize(c)
}
