// Package textnorm provides lower-cased token and stem views of résumé text.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var nonWord = regexp.MustCompile(`[^a-z0-9_]+`)

// Normalizer tokenizes and stems text. It holds no per-call state and is safe
// for concurrent use.
type Normalizer struct{}

// View is the normalized form of one document.
type View struct {
	Lower  string
	Tokens []string
	Stems  map[string]struct{}
}

func New() *Normalizer {
	return &Normalizer{}
}

// Tokens lower-cases text and splits it on runs of non-word characters.
func (n *Normalizer) Tokens(text string) []string {
	parts := nonWord.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Stem returns the English (Porter2) stem of word, e.g. "developing" -> "develop".
func (n *Normalizer) Stem(word string) string {
	return english.Stem(strings.ToLower(word), true)
}

// Analyze builds the lower-cased text, token sequence and stem set for text.
func (n *Normalizer) Analyze(text string) *View {
	tokens := n.Tokens(text)
	stems := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		stems[n.Stem(t)] = struct{}{}
	}
	return &View{
		Lower:  strings.ToLower(text),
		Tokens: tokens,
		Stems:  stems,
	}
}

// HasStem reports whether stem occurs among the document's stems.
func (v *View) HasStem(stem string) bool {
	_, ok := v.Stems[stem]
	return ok
}
