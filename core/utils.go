package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsString reports whether `s` is an element of `slice`.
func ContainsString(slice []string, s string) bool {
	for _, el := range slice {
		if el == s {
			return true
		}
	}
	return false
}

// RemoveString returns a copy of `slice` with every occurrence of `s` removed.
func RemoveString(slice []string, s string) []string {
	res := make([]string, 0, len(slice))
	for _, el := range slice {
		if el != s {
			res = append(res, el)
		}
	}
	return res
}
