package cv

import (
	"strings"

	"ats-checker/internal/patterns"
)

// Education returns one entry per degree line that carries at least one
// detail besides the degree itself. Institution and year are searched in a
// window of lines around the degree line.
func (e *Extractor) Education(text string) []EducationEntry {
	rules := e.lib.Education()
	lines := splitLines(text)
	entries := []EducationEntry{}

	for i, line := range lines {
		if !anyMatch(rules.Degrees, line) {
			continue
		}

		entry := EducationEntry{Degree: strings.TrimSpace(line)}
		if field, ok := rules.Field.Group(line, 1); ok {
			if field = strings.TrimSpace(field); field != "" {
				entry.FieldOfStudy = ptr(field)
			}
		}

		lo := max(0, i-rules.Window)
		hi := min(len(lines), i+rules.Window+1)
		window := lines[lo:hi]
		entry.Institution = firstMatch(rules.Institutions, window)
		entry.GraduationYear = firstYear(rules.Year, window)

		if entry.FieldOfStudy == nil && entry.Institution == nil && entry.GraduationYear == nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func firstMatch(ps []*patterns.Pattern, lines []string) *string {
	for _, line := range lines {
		for _, p := range ps {
			if m := p.Find(line); m != "" {
				return ptr(strings.TrimSpace(m))
			}
		}
	}
	return nil
}

func firstYear(p *patterns.Pattern, lines []string) *string {
	for _, line := range lines {
		if year, ok := p.Group(line, 1); ok {
			return ptr(year)
		}
	}
	return nil
}
