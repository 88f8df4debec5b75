package placement

import (
	"sort"
	"strconv"
)

// GenerateSearchKeys derives the lookup aliases a booth can be found by
// Result is de-duplicated and sorted
//
// For "A-01-02" this yields: 01, 02, 1, 2, A, A-01, A-01-02, A-02, A01, A01-02, A02
func GenerateSearchKeys(code Code) []string {
	set := make(map[string]struct{}, 12)
	add := func(s string) {
		if s != "" {
			set[s] = struct{}{}
		}
	}

	addNumber := func(n string) {
		if n == "" {
			return
		}
		add(code.Block + "-" + n)
		add(code.Block + n)
		add(n)
		if v, ok := Number(n); ok {
			add(strconv.Itoa(v))
		}
	}

	add(code.Block)
	addNumber(code.Number1)
	addNumber(code.Number2)

	if code.Number2 != "" {
		add(code.Block + "-" + code.Number1 + "-" + code.Number2)
		add(code.Block + code.Number1 + "-" + code.Number2)
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
