package analysis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-checker/internal/patterns"
	"ats-checker/internal/scoring"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	lib, err := patterns.Load()
	require.NoError(t, err)
	return NewAnalyzer(lib)
}

func scenarioResume() string {
	return "John Smith\nSoftware Engineer\nSkills: Python, Java, Communication\nExperience: ...\njohn@x.com\n+94771234567\n" +
		strings.TrimSpace(strings.Repeat("lorem ", 160))
}

func TestAnalyze_Scenario(t *testing.T) {
	a := newTestAnalyzer(t)

	r := a.Analyze(scenarioResume())

	require.NotNil(t, r.Name)
	assert.Equal(t, "John Smith", *r.Name)
	require.NotNil(t, r.Profession)
	assert.Equal(t, "Software Engineer", *r.Profession)
	assert.Equal(t, []string{"john@x.com"}, r.ContactInfo.Emails)
	assert.NotEmpty(t, r.ContactInfo.PhoneNumbers)
	assert.Equal(t, []string{"python", "java"}, r.Skills.Technical)
	assert.Equal(t, []string{"communication"}, r.Skills.Soft)
	assert.Equal(t, Junior, r.ExperienceLevel)
	assert.NotContains(t, r.Issues, scoring.IssueTooShort)
	assert.Len(t, r.Recommendations, 10)
}

func TestAnalyze_Empty(t *testing.T) {
	a := newTestAnalyzer(t)

	r := a.Analyze("")

	assert.Nil(t, r.Name)
	assert.Nil(t, r.Profession)
	assert.Empty(t, r.Skills.Technical)
	assert.Empty(t, r.Skills.Soft)
	assert.Empty(t, r.Education)
	assert.Empty(t, r.ContactInfo.Emails)
	assert.Empty(t, r.ContactInfo.PhoneNumbers)
	assert.Nil(t, r.ContactInfo.LinkedInURL)
	assert.Nil(t, r.ContactInfo.PortfolioURL)
	assert.Equal(t, 0, r.ATSScore)
	assert.False(t, r.IsATSFriendly)
	assert.NotEmpty(t, r.Issues)
	assert.Equal(t, Junior, r.ExperienceLevel)
}

func TestAnalyze_NoEmail(t *testing.T) {
	a := newTestAnalyzer(t)

	r := a.Analyze("Jane Doe\nreach me at jane at example dot com")

	assert.Empty(t, r.ContactInfo.Emails)
	assert.Contains(t, r.Issues, scoring.IssueEmail)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	text := scenarioResume()

	first, err := json.Marshal(a.Analyze(text))
	require.NoError(t, err)
	second, err := json.Marshal(a.Analyze(text))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestReport_JSONShape(t *testing.T) {
	a := newTestAnalyzer(t)

	data, err := json.Marshal(a.Analyze(""))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	for _, key := range []string{
		"name", "profession", "skills", "education", "contact_info", "experience_level",
		"ats_score", "issues", "is_ats_friendly", "recommendations",
	} {
		assert.Contains(t, got, key)
	}
	assert.Len(t, got, 10)

	assert.Nil(t, got["name"])
	assert.Equal(t, []any{}, got["education"])
	assert.Equal(t, map[string]any{"technical": []any{}, "soft": []any{}}, got["skills"])
	assert.Equal(t, map[string]any{
		"phone_numbers": []any{},
		"emails":        []any{},
		"linkedin_url":  nil,
		"portfolio_url": nil,
	}, got["contact_info"])
}

func TestLevel(t *testing.T) {
	tests := []struct {
		words, skills int
		want          ExperienceLevel
	}{
		{1001, 16, Senior},
		{1001, 15, MidLevel},
		{1000, 30, MidLevel},
		{501, 11, MidLevel},
		{501, 10, Junior},
		{500, 30, Junior},
		{0, 0, Junior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.words, tt.skills), "words=%d skills=%d", tt.words, tt.skills)
	}
}
