package patterns

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled, immutable regular expression with a uniform
// "match a region of text" surface shared by every extractor.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

func compile(source string) (*Pattern, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", source, err)
	}
	return &Pattern{source: source, re: re}, nil
}

// wordPattern matches term case-insensitively on word boundaries.
func wordPattern(term string) (*Pattern, error) {
	return compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.source
}

// Match reports whether the pattern occurs anywhere in text.
func (p *Pattern) Match(text string) bool {
	return p.re.MatchString(text)
}

// Find returns the leftmost match, or "" when there is none.
func (p *Pattern) Find(text string) string {
	return p.re.FindString(text)
}

// FindAll returns every non-overlapping match in order.
func (p *Pattern) FindAll(text string) []string {
	return p.re.FindAllString(text, -1)
}

// Group returns capture group i of the leftmost match.
func (p *Pattern) Group(text string, i int) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil || i >= len(m) {
		return "", false
	}
	return m[i], true
}

// Count returns the number of non-overlapping matches.
func (p *Pattern) Count(text string) int {
	return len(p.re.FindAllStringIndex(text, -1))
}
