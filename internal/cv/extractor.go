package cv

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ats-checker/internal/patterns"
	"ats-checker/internal/textnorm"
)

// Skills holds matched skill terms, lower-case, in first-matched order.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Count is the combined number of technical and soft skills.
func (s Skills) Count() int {
	return len(s.Technical) + len(s.Soft)
}

type EducationEntry struct {
	Degree         string  `json:"degree"`
	FieldOfStudy   *string `json:"field_of_study"`
	Institution    *string `json:"institution"`
	GraduationYear *string `json:"graduation_year"`
}

type ContactInfo struct {
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`
	LinkedInURL  *string  `json:"linkedin_url"`
	PortfolioURL *string  `json:"portfolio_url"`
}

// Extractor pulls structured fields out of résumé text. Each method is
// independent and returns an empty or nil result when nothing matches.
type Extractor struct {
	lib  *patterns.Library
	norm *textnorm.Normalizer
}

func NewExtractor(lib *patterns.Library, norm *textnorm.Normalizer) *Extractor {
	return &Extractor{
		lib:  lib,
		norm: norm,
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

// capitalize upper-cases the first letter of every word.
func capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func ptr(s string) *string {
	return &s
}
