// Package thainum normalizes Thai-script numerals and section labels so
// section numbers written in either script compare, sort, and match
// identically.
package thainum

import (
	"strings"
	"unicode"
)

// ToArabic maps Thai digit characters (๐-๙) to their Arabic equivalents.
// All other characters pass through unchanged.
func ToArabic(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r >= '๐' && r <= '๙' {
			return '0' + (r - '๐')
		}
		return r
	}, s)
}

// NormalizeSearch canonicalizes text for query matching: Thai digits become
// Arabic, letters are lowercased, and all whitespace is stripped. "๑๑๒",
// "112" and " 112 " all normalize to the same string.
func NormalizeSearch(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(ToArabic(s)) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
