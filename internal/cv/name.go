package cv

import "strings"

// Name finds the candidate's name near the top of the document. A plain
// "First Last" line wins; an explicit "Name:" label is the fallback.
func (e *Extractor) Name(text string) *string {
	rules := e.lib.Name()
	lines := splitLines(text)

	for _, line := range head(lines, rules.ScanLines) {
		line = strings.TrimSpace(line)
		if line == "" || hasNonNameWord(line, rules.NonNameWords) {
			continue
		}
		if name, ok := rules.Line.Group(line, 1); ok && !hasNonNameWord(name, rules.NonNameWords) {
			return ptr(strings.TrimSpace(name))
		}
	}

	for _, line := range head(lines, rules.LabelScanLines) {
		name, ok := rules.Label.Group(line, 1)
		if ok && !hasNonNameWord(name, rules.NonNameWords) {
			return ptr(strings.TrimSpace(name))
		}
	}
	return nil
}

func hasNonNameWord(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
