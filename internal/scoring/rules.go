package scoring

import (
	"strings"

	"ats-checker/internal/cv"
	"ats-checker/internal/patterns"
)

// Derived holds the fields the scorer computes for itself before applying rules.
type Derived struct {
	Lower      string
	Words      int
	Contact    cv.ContactInfo
	Skills     cv.Skills
	Education  []cv.EducationEntry
	Profession *string
}

// Rule is one score adjustment. Apply returns the delta and, for deficiencies,
// the issue to report; an empty issue means nothing is reported.
type Rule struct {
	Name  string
	Apply func(text string, d Derived) (float64, string)
}

const (
	IssueTable       = "Contains table-like formatting (| character)"
	IssueImages      = "Mentions image files (possible use of images)"
	IssueBullets     = "Uses special bullet characters"
	IssuePhone       = "No phone number found"
	IssueEmail       = "No email address found"
	IssueProfileURL  = "No LinkedIn or portfolio URL found"
	IssueTooShort    = "CV is very short (<150 words)"
	IssueTooLong     = "CV is very long (>1000 words)"
	IssueTechnical   = "Insufficient technical skills (fewer than 5 found)"
	IssueSoft        = "Insufficient soft skills (fewer than 3 found)"
	IssueEducation   = "No education details found"
	IssueActionVerbs = "Few action verbs used (fewer than 10 found)"
)

const (
	minWords           = 150
	maxWords           = 1000
	minTechnicalSkills = 5
	minSoftSkills      = 3
	minActionVerbs     = 10
)

func penalty(when bool, delta float64, issue string) (float64, string) {
	if when {
		return -delta, issue
	}
	return 0, ""
}

func bonus(when bool, delta float64) (float64, string) {
	if when {
		return delta, ""
	}
	return 0, ""
}

func countMatches(ps []*patterns.Pattern, text string) int {
	n := 0
	for _, p := range ps {
		if p.Match(text) {
			n++
		}
	}
	return n
}

// Rules returns the scoring rules in the order they are applied.
func Rules(lib *patterns.Library) []Rule {
	sc := lib.Scoring()

	return []Rule{
		{"table", func(text string, _ Derived) (float64, string) {
			return penalty(sc.Table.Match(text), 5, IssueTable)
		}},
		{"images", func(text string, _ Derived) (float64, string) {
			return penalty(sc.Image.Match(text), 5, IssueImages)
		}},
		{"bullets", func(text string, _ Derived) (float64, string) {
			return penalty(sc.Bullet.Match(text), 5, IssueBullets)
		}},
		{"phone", func(_ string, d Derived) (float64, string) {
			return penalty(len(d.Contact.PhoneNumbers) == 0, 5, IssuePhone)
		}},
		{"email", func(_ string, d Derived) (float64, string) {
			return penalty(len(d.Contact.Emails) == 0, 5, IssueEmail)
		}},
		{"profile_url", func(_ string, d Derived) (float64, string) {
			return penalty(d.Contact.LinkedInURL == nil && d.Contact.PortfolioURL == nil, 5, IssueProfileURL)
		}},
		{"too_short", func(_ string, d Derived) (float64, string) {
			return penalty(d.Words < minWords, 5, IssueTooShort)
		}},
		{"too_long", func(_ string, d Derived) (float64, string) {
			return penalty(d.Words > maxWords, 5, IssueTooLong)
		}},
		{"technical_skills", func(_ string, d Derived) (float64, string) {
			n := len(d.Skills.Technical)
			if n < minTechnicalSkills {
				return -10, IssueTechnical
			}
			return min(float64(n)*2, 20), ""
		}},
		{"soft_skills", func(_ string, d Derived) (float64, string) {
			n := len(d.Skills.Soft)
			if n < minSoftSkills {
				return -5, IssueSoft
			}
			return min(float64(n)*2, 10), ""
		}},
		{"common_skills", func(text string, _ Derived) (float64, string) {
			return float64(countMatches(sc.CommonSkills, text)) * 0.5, ""
		}},
		{"education", func(_ string, d Derived) (float64, string) {
			n := len(d.Education)
			if n == 0 {
				return -15, IssueEducation
			}
			return min(float64(n)*5, 20), ""
		}},
		{"sections", func(text string, _ Derived) (float64, string) {
			return float64(countMatches(sc.Sections, text)) * 5, ""
		}},
		{"action_verbs", func(text string, _ Derived) (float64, string) {
			n := countMatches(sc.ActionVerbs, text)
			if n < minActionVerbs {
				return -5, IssueActionVerbs
			}
			return min(float64(n)*0.5, 10), ""
		}},
		{"profession", func(_ string, d Derived) (float64, string) {
			if d.Profession == nil {
				return 0, ""
			}
			m := 0
			for _, w := range strings.Fields(strings.ToLower(*d.Profession)) {
				if strings.Contains(d.Lower, w) {
					m++
				}
			}
			return min(float64(m)*3, 15), ""
		}},
		{"quantifiable", func(text string, _ Derived) (float64, string) {
			return bonus(sc.Quantifiable.Match(text), 5)
		}},
	}
}
