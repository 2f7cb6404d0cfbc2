package admins

import "regexp"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail is a shape check, not RFC validation; the sheet is the source of
// truth for what an admin address looks like.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}
