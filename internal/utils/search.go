package utils

import (
	"regexp"
	"strings"
)

// ContainsPattern returns a regular expression that matches text literally
// anywhere in a field. Metacharacters in text are escaped, so a query such as
// "a.*b" only matches the four characters a . * b in that order.
func ContainsPattern(text string) string {
	return regexp.QuoteMeta(text)
}

// ExactPattern anchors the escaped text so the whole field must match.
func ExactPattern(text string) string {
	return "^" + regexp.QuoteMeta(text) + "$"
}

// NormalizeEmail trims and lower-cases an address. Email lookups and writes
// all go through it so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitName splits a display name on whitespace into first and last name.
// fallbackLast is used when the name has a single token.
func SplitName(name, fallbackLast string) (first, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", fallbackLast
	}
	first = fields[0]
	last = strings.Join(fields[1:], " ")
	if last == "" {
		last = fallbackLast
	}
	return first, last
}
