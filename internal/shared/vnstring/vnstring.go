// Package vnstring contains helpers for working with Vietnamese names:
// diacritic stripping and the username convention used for staff accounts
// (last name followed by the initials of every preceding name part,
// e.g. "Nguyễn Văn An" -> "annv").
package vnstring

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveTones strips Vietnamese diacritics: decompose, drop combining marks,
// recompose. The letter đ/Đ does not decompose so it is replaced explicitly.
func RemoveTones(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")
	return out
}

// GenerateUsername builds the account username from a full name.
// A single-part name is used as-is; otherwise the last part is the base and
// the initials of the remaining parts are appended.
func GenerateUsername(fullName string) string {
	noTone := RemoveTones(strings.ToLower(strings.TrimSpace(fullName)))
	parts := strings.Fields(noTone)

	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	lastName := parts[len(parts)-1]
	var initials strings.Builder
	for _, p := range parts[:len(parts)-1] {
		initials.WriteByte(p[0])
	}

	return lastName + initials.String()
}
