package slips

import "regexp"

var monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsMonth reports whether s is a YYYY-MM month string.
func IsMonth(s string) bool {
	return monthRe.MatchString(s)
}
