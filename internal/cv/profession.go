package cv

import (
	"strings"

	"ats-checker/internal/patterns"
)

// Profession infers a job title from the header region. Degree credentials
// take precedence; keyword-context pairs such as "Software Engineer" are the
// fallback.
func (e *Extractor) Profession(text string) *string {
	header := strings.Join(head(splitLines(text), e.lib.HeaderLines()), " ")
	if strings.TrimSpace(header) == "" {
		return nil
	}

	if title, ok := e.professionFromCredentials(header); ok {
		return ptr(title)
	}
	if title, ok := e.professionFromContext(header); ok {
		return ptr(title)
	}
	return nil
}

func (e *Extractor) professionFromCredentials(header string) (string, bool) {
	for _, q := range e.lib.Qualifications() {
		if !anyMatch(q.Patterns, header) {
			continue
		}
		for _, s := range q.Specializations {
			if anyMatch(s.Keywords, header) {
				return capitalize(s.Name) + " " + capitalize(q.Base), true
			}
		}
		return q.Base, true
	}
	return "", false
}

func (e *Extractor) professionFromContext(header string) (string, bool) {
	tokens := len(e.norm.Tokens(header))
	if tokens == 0 {
		return "", false
	}
	tf := func(p *patterns.Pattern) float64 {
		return float64(p.Count(header)) / float64(tokens)
	}

	var (
		best  string
		score float64
		found bool
	)
	for _, prof := range e.lib.Professions() {
		for _, c := range prof.Contexts {
			if !anyMatch(c.Surface, header) {
				continue
			}
			// Every surface pattern of a pair shares the same weight, so the
			// pair is scored once.
			w := tf(c.Term) + tf(prof.Term)
			if !found || w > score {
				best = capitalize(c.Context) + " " + capitalize(prof.Name)
				score = w
				found = true
			}
		}
	}
	return best, found
}

func anyMatch(ps []*patterns.Pattern, text string) bool {
	for _, p := range ps {
		if p.Match(text) {
			return true
		}
	}
	return false
}
