// Package analysis assembles the résumé report from the field extractors and
// the scorer.
package analysis

import (
	"ats-checker/internal/cv"
	"ats-checker/internal/patterns"
	"ats-checker/internal/scoring"
	"ats-checker/internal/textnorm"
)

type ExperienceLevel string

const (
	Junior   ExperienceLevel = "Junior"
	MidLevel ExperienceLevel = "Mid-level"
	Senior   ExperienceLevel = "Senior"
)

// Report is the analysis result for one document.
type Report struct {
	Name            *string             `json:"name"`
	Profession      *string             `json:"profession"`
	Skills          cv.Skills           `json:"skills"`
	Education       []cv.EducationEntry `json:"education"`
	ContactInfo     cv.ContactInfo      `json:"contact_info"`
	ExperienceLevel ExperienceLevel     `json:"experience_level"`
	ATSScore        int                 `json:"ats_score"`
	Issues          []string            `json:"issues"`
	IsATSFriendly   bool                `json:"is_ats_friendly"`
	Recommendations []string            `json:"recommendations"`

	// Breakdown is kept out of the API response; the CLI prints it.
	Breakdown []scoring.Adjustment `json:"-"`
}

// Level classifies experience from document length and skill count.
func Level(words, skills int) ExperienceLevel {
	switch {
	case words > 1000 && skills > 15:
		return Senior
	case words > 500 && skills > 10:
		return MidLevel
	default:
		return Junior
	}
}

// Analyzer runs the full pipeline. It holds only read-only state and is safe
// for concurrent use.
type Analyzer struct {
	lib       *patterns.Library
	extractor *cv.Extractor
	scorer    *scoring.Scorer
}

func NewAnalyzer(lib *patterns.Library) *Analyzer {
	extractor := cv.NewExtractor(lib, textnorm.New())
	return &Analyzer{
		lib:       lib,
		extractor: extractor,
		scorer:    scoring.NewScorer(lib, extractor),
	}
}

func (a *Analyzer) Analyze(text string) *Report {
	skills := a.extractor.Skills(text)
	score := a.scorer.Score(text)

	return &Report{
		Name:            a.extractor.Name(text),
		Profession:      a.extractor.Profession(text),
		Skills:          skills,
		Education:       a.extractor.Education(text),
		ContactInfo:     a.extractor.Contact(text),
		ExperienceLevel: Level(scoring.WordCount(text), skills.Count()),
		ATSScore:        score.Score,
		Issues:          score.Issues,
		IsATSFriendly:   score.Friendly,
		Recommendations: a.lib.Recommendations(),
		Breakdown:       score.Breakdown,
	}
}
