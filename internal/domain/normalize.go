package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the ISO calendar date format used at every boundary.
const DateLayout = "2006-01-02"

var (
	phonePattern = regexp.MustCompile(`^\+\d{1,3}\d{8,12}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone removes all whitespace from a phone number.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

// ValidEmail reports whether email (already normalized) is well-formed.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone reports whether phone (already normalized) is an international
// number: '+', 1-3 digit country code, 8-12 digit subscriber number.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CharCount counts characters (runes), not bytes.
func CharCount(s string) int {
	return len([]rune(s))
}
