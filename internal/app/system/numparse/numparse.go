// Package numparse extracts numbers from free-text fields.
package numparse

import (
	"strconv"
	"strings"
)

// LeadingInt returns the integer value of the first whitespace-delimited
// token of s. It reports false when s is empty or the first token is not
// an integer; callers use that to suppress the predicate rather than
// fail (a stored capacity like "many" should not error a search).
func LeadingInt(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
