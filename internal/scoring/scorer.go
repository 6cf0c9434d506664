// Package scoring estimates how well a résumé will survive automated
// screening. The score starts at BaseScore and is adjusted by an ordered
// table of independent rules.
package scoring

import (
	"math"
	"strings"

	"ats-checker/internal/cv"
	"ats-checker/internal/patterns"
)

const (
	BaseScore = 50
	// FriendlyThreshold is the lowest score reported as ATS friendly.
	FriendlyThreshold = 70
)

// Adjustment records what one rule contributed.
type Adjustment struct {
	Rule  string  `json:"rule"`
	Delta float64 `json:"delta"`
}

type Result struct {
	Score     int
	Friendly  bool
	Issues    []string
	Breakdown []Adjustment
}

// Scorer is safe for concurrent use.
type Scorer struct {
	extractor *cv.Extractor
	rules     []Rule
}

func NewScorer(lib *patterns.Library, extractor *cv.Extractor) *Scorer {
	return &Scorer{
		extractor: extractor,
		rules:     Rules(lib),
	}
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Derive computes the fields rules depend on. Extraction is repeated here
// rather than taken from the caller.
func (s *Scorer) Derive(text string) Derived {
	return Derived{
		Lower:      strings.ToLower(text),
		Words:      WordCount(text),
		Contact:    s.extractor.Contact(text),
		Skills:     s.extractor.Skills(text),
		Education:  s.extractor.Education(text),
		Profession: s.extractor.Profession(text),
	}
}

func (s *Scorer) Score(text string) Result {
	d := s.Derive(text)

	total := float64(BaseScore)
	res := Result{
		Issues:    []string{},
		Breakdown: make([]Adjustment, 0, len(s.rules)),
	}
	for _, r := range s.rules {
		delta, issue := r.Apply(text, d)
		total += delta
		if issue != "" {
			res.Issues = append(res.Issues, issue)
		}
		res.Breakdown = append(res.Breakdown, Adjustment{Rule: r.Name, Delta: delta})
	}

	res.Score = int(math.Round(math.Max(0, math.Min(100, total))))
	res.Friendly = res.Score >= FriendlyThreshold
	return res
}
