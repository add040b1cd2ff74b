// Package serial generates product serial codes of the form
// slug(manufacturer)_slug(name)_<counter:010d>.
package serial

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Local letters are mapped before generic diacritic stripping so that
// Đ becomes "Dj" and DŽ becomes "DZ" rather than being dropped.
// The single code point digraphs U+01C4..U+01CC only have compatibility
// decompositions, which NFD leaves alone, so they are spelled out here.
var localLetters = strings.NewReplacer(
	"Č", "C", "Ć", "C", "č", "c", "ć", "c",
	"DŽ", "DZ", "Dž", "Dz", "dž", "dz",
	"\u01C4", "DZ", "\u01C5", "Dz", "\u01C6", "dz",
	"\u01C7", "LJ", "\u01C8", "Lj", "\u01C9", "lj",
	"\u01CA", "NJ", "\u01CB", "Nj", "\u01CC", "nj",
	"Đ", "Dj", "đ", "dj",
	"Š", "S", "š", "s",
	"Ž", "Z", "ž", "z",
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	disallowed    = regexp.MustCompile(`[^A-Za-z0-9_\-.]`)
	underscoreRun = regexp.MustCompile(`_+`)
)

// Slugify reduces s to ASCII letters, digits, '_', '-' and '.'.
// The result never starts or ends with '_' and never contains "__".
// Slugify is idempotent.
func Slugify(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = localLetters.Replace(s)
	s = stripMarks(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	s = disallowed.ReplaceAllString(s, "")
	s = underscoreRun.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.M)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
