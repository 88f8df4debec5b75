package placement

// Merge combines two independently entered single-space positions into a double-space code
// Blocks must match and numbers must be consecutive; argument order does not matter,
// the lower number always becomes Number1
func Merge(posA, posB string) (Code, error) {
	a, err := Parse(posA)
	if err != nil {
		return Code{}, &MergeError{A: posA, B: posB, Reason: "first position: " + err.Error()}
	}
	b, err := Parse(posB)
	if err != nil {
		return Code{}, &MergeError{A: posA, B: posB, Reason: "second position: " + err.Error()}
	}
	if a.IsDouble() || b.IsDouble() {
		return Code{}, &MergeError{A: posA, B: posB, Reason: "positions must be single-space"}
	}
	if a.Block != b.Block {
		return Code{}, &MergeError{A: posA, B: posB, Reason: "blocks differ (" + a.Block + " vs " + b.Block + ")"}
	}

	na, _ := Number(a.Number1)
	nb, _ := Number(b.Number1)
	switch {
	case nb == na+1:
		return Code{Block: a.Block, Number1: a.Number1, Number2: b.Number1}, nil
	case na == nb+1:
		return Code{Block: a.Block, Number1: b.Number1, Number2: a.Number1}, nil
	default:
		return Code{}, &MergeError{A: posA, B: posB, Reason: "numbers are not consecutive"}
	}
}
