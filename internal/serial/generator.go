package serial

import (
	"fmt"
	"strings"
)

// Generator builds serial codes from a manufacturer and product name.
type Generator struct {
	counter Counter
	onIssue func()
}

// Option configures a Generator.
type Option func(*Generator)

// WithIssueHook registers fn to be called after each issued code.
func WithIssueHook(fn func()) Option {
	return func(g *Generator) { g.onIssue = fn }
}

// NewGenerator creates a Generator drawing sequence numbers from counter.
func NewGenerator(counter Counter, opts ...Option) *Generator {
	g := &Generator{counter: counter}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns slug(manufacturer)_slug(name)_<counter:010d>.
// It returns false, without consuming a counter value, when either
// input is blank or slugifies to an empty string.
func (g *Generator) Generate(manufacturer, name string) (string, bool) {
	if strings.TrimSpace(manufacturer) == "" || strings.TrimSpace(name) == "" {
		return "", false
	}

	m := Slugify(manufacturer)
	n := Slugify(name)
	if m == "" || n == "" {
		return "", false
	}

	code := fmt.Sprintf("%s_%s_%010d", m, n, g.counter.Next())
	if g.onIssue != nil {
		g.onIssue()
	}
	return code, true
}

// NextAfter returns the first counter value to issue once latest, the
// highest stored serial code, is taken. An empty or foreign code starts at 1.
func NextAfter(latest string) int64 {
	if n, ok := Sequence(latest); ok {
		return n + 1
	}
	return 1
}

// Sequence extracts the trailing counter value from a serial code.
func Sequence(code string) (int64, bool) {
	i := strings.LastIndexByte(code, '_')
	if i < 0 || len(code)-i-1 != 10 {
		return 0, false
	}
	var n int64
	for _, r := range code[i+1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
