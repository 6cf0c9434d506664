package cv

import (
	"strings"

	"ats-checker/internal/patterns"
	"ats-checker/internal/textnorm"
)

// Skills matches the skill taxonomy against the whole document. Single words
// match on their stem; phrases match verbatim or when every word's stem occurs
// somewhere in the text, in any order.
func (e *Extractor) Skills(text string) Skills {
	view := e.norm.Analyze(text)
	return Skills{
		Technical: e.matchCategories(view, e.lib.TechnicalSkills()),
		Soft:      e.matchCategories(view, e.lib.SoftSkills()),
	}
}

func (e *Extractor) matchCategories(view *textnorm.View, cats []patterns.SkillCategory) []string {
	found := []string{}
	seen := make(map[string]bool)
	for _, cat := range cats {
		for _, term := range cat.Terms {
			if seen[term] || !e.hasSkill(view, term) {
				continue
			}
			seen[term] = true
			found = append(found, term)
		}
	}
	return found
}

func (e *Extractor) hasSkill(view *textnorm.View, term string) bool {
	words := e.norm.Tokens(term)
	switch {
	case len(words) == 0:
		return false
	case len(words) == 1 && words[0] != term:
		// Symbols are lost on tokenizing (c++, c#), so only a literal hit counts.
		return strings.Contains(view.Lower, term)
	case len(words) == 1:
		return view.HasStem(e.norm.Stem(term))
	}

	if strings.Contains(view.Lower, term) {
		return true
	}
	for _, w := range words {
		if !view.HasStem(e.norm.Stem(w)) {
			return false
		}
	}
	return true
}
