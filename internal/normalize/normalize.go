// Package normalize canonicalizes phone numbers and free text from inbound messages.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

const countryCode = "91"

var (
	pincodePattern = regexp.MustCompile(`(?:^|\D)([1-9]\d{5})(?:\D|$)`)
	orderIDPattern = regexp.MustCompile(`(?i)\bKAA[-\s_]?(\d{6})\b`)
	spaces         = regexp.MustCompile(`\s+`)
)

// Phone returns the 12-digit country-code form of an Indian number.
// Input that does not look like one is returned as its digits with leading
// zeros removed. Phone is idempotent.
func Phone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")

	switch {
	case len(digits) == 10:
		return countryCode + digits
	case len(digits) == 12 && strings.HasPrefix(digits, countryCode):
		return digits
	default:
		return digits
	}
}

// Local returns the 10-digit subscriber part of a normalized number.
func Local(phone string) string {
	p := Phone(phone)
	if len(p) == 12 && strings.HasPrefix(p, countryCode) {
		return p[2:]
	}
	return p
}

// Display formats a number as "+91 98765 43210".
func Display(phone string) string {
	local := Local(phone)
	if len(local) != 10 {
		return phone
	}
	return "+" + countryCode + " " + local[:5] + " " + local[5:]
}

// Text trims, collapses whitespace and lower-cases.
func Text(s string) string {
	return strings.ToLower(spaces.ReplaceAllString(strings.TrimSpace(s), " "))
}

// Keyword reduces text to a comparable token by lower-casing and trimming
// surrounding punctuation and emoji.
func Keyword(s string) string {
	return strings.TrimFunc(Text(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// StripPrefix removes the first matching prefix, case-insensitively.
func StripPrefix(s string, prefixes ...string) string {
	upper := strings.ToUpper(s)
	for _, p := range prefixes {
		if strings.HasPrefix(upper, strings.ToUpper(p)) {
			return s[len(p):]
		}
	}
	return s
}

// StripSuffix removes the first matching suffix, case-insensitively.
func StripSuffix(s string, suffixes ...string) string {
	upper := strings.ToUpper(s)
	for _, p := range suffixes {
		if strings.HasSuffix(upper, strings.ToUpper(p)) {
			return s[:len(s)-len(p)]
		}
	}
	return s
}

// Pincode extracts the first 6-digit Indian postal code.
func Pincode(s string) (string, bool) {
	m := pincodePattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ValidPincode reports whether s is exactly a 6-digit postal code.
func ValidPincode(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 6 {
		return false
	}
	p, ok := Pincode(s)
	return ok && p == s
}

// OrderID extracts an order reference such as "kaa 123456" as "KAA-123456".
func OrderID(s string) (string, bool) {
	m := orderIDPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return "KAA-" + m[1], true
}
