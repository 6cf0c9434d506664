package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	n := New()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"lower-cases", "Python JAVA", []string{"python", "java"}},
		{"splits on punctuation", "node.js, CI/CD; c++", []string{"node", "js", "ci", "cd", "c"}},
		{"keeps digits and underscores", "web_3 2021", []string{"web_3", "2021"}},
		{"collapses separators", "  a --- b\n\tc ", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Tokens(tt.input))
		})
	}
}

func TestStem(t *testing.T) {
	n := New()

	assert.Equal(t, "develop", n.Stem("developing"))
	assert.Equal(t, "manag", n.Stem("managed"))
	assert.Equal(t, n.Stem("communication"), n.Stem("Communication"))
	assert.Equal(t, n.Stem("lead"), n.Stem("leading"))
}

func TestAnalyze(t *testing.T) {
	n := New()

	v := n.Analyze("Developing APIs and Managed teams")

	assert.Equal(t, "developing apis and managed teams", v.Lower)
	assert.Equal(t, []string{"developing", "apis", "and", "managed", "teams"}, v.Tokens)
	assert.True(t, v.HasStem("develop"))
	assert.True(t, v.HasStem("manag"))
	assert.True(t, v.HasStem(n.Stem("team")))
	assert.False(t, v.HasStem("python"))
}

func TestAnalyze_Deterministic(t *testing.T) {
	n := New()
	text := "Led cross-functional teams; improved latency by 40%"

	assert.Equal(t, n.Analyze(text), n.Analyze(text))
}
