package patterns

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, lib.Name().ScanLines)
	assert.Equal(t, 20, lib.Name().LabelScanLines)
	assert.Equal(t, 20, lib.HeaderLines())
	assert.Equal(t, 2, lib.Education().Window)
	assert.Len(t, lib.Recommendations(), 10)
	assert.Len(t, lib.Contact().Phones, 18)
	assert.Len(t, lib.Scoring().Sections, 4)

	var cats []string
	for _, c := range lib.TechnicalSkills() {
		cats = append(cats, c.Name)
	}
	assert.Equal(t, []string{"programming", "web", "database", "cloud", "devops", "ai_ml", "security", "mobile"}, cats)

	cats = cats[:0]
	for _, c := range lib.SoftSkills() {
		cats = append(cats, c.Name)
	}
	assert.Equal(t, []string{"communication", "leadership", "problem_solving", "collaboration", "adaptability"}, cats)

	quals := lib.Qualifications()
	require.NotEmpty(t, quals)
	assert.Equal(t, "engineering", quals[0].Family)
	assert.Equal(t, "Engineer", quals[0].Base)
}

func TestDefault_Validates(t *testing.T) {
	v := Check(Default())
	assert.True(t, v.OK(), "errors: %v", v.Errors)
	assert.Empty(t, v.Warnings)
}

func TestLibrary_AccessorsReturnCopies(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	recs := lib.Recommendations()
	recs[0] = "changed"
	assert.NotEqual(t, "changed", lib.Recommendations()[0])

	tech := lib.TechnicalSkills()
	tech[0].Terms[0] = "cobol"
	assert.Equal(t, "python", lib.TechnicalSkills()[0].Terms[0])

	profs := lib.Professions()
	profs[0].Contexts[0].Surface[0] = nil
	assert.NotNil(t, lib.Professions()[0].Contexts[0].Surface[0])
}

func TestProfession_SurfacePatterns(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	var software ContextPair
	for _, p := range lib.Professions() {
		if p.Name != "engineer" {
			continue
		}
		for _, c := range p.Contexts {
			if c.Context == "software" {
				software = c
			}
		}
	}
	require.Len(t, software.Surface, 4)

	tests := []struct {
		text string
		idx  int
	}{
		{"Senior Software Engineer at Acme", 0},
		{"engineer software", 1},
		{"Engineer (Embedded Software)", 2},
		{"Software (Platform Engineer)", 3},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.True(t, software.Surface[tt.idx].Match(tt.text))
		})
	}
	assert.False(t, software.Surface[0].Match("software-engineering"))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "not yaml",
			mutate:  func(string) string { return ":\n\t- [" },
			wantErr: "yaml",
		},
		{
			name:    "unknown field",
			mutate:  func(s string) string { return s + "\nextra: true\n" },
			wantErr: "extra",
		},
		{
			name: "bad regex",
			mutate: func(s string) string {
				return strings.Replace(s, `table_pattern: '\|'`, `table_pattern: '(unclosed'`, 1)
			},
			wantErr: "scoring.table_pattern",
		},
		{
			name: "missing required",
			mutate: func(s string) string {
				return strings.Replace(s, `year_pattern:`, `# year_pattern:`, 1)
			},
			wantErr: "YearPattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(Default()))))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCheck_Warnings(t *testing.T) {
	doc := strings.Replace(string(Default()), "    - python\n    - java\n", "    - python\n    - python\n    - java\n", 1)

	v := Check([]byte(doc))
	assert.True(t, v.OK(), "errors: %v", v.Errors)
	require.NotEmpty(t, v.Warnings)
	assert.Contains(t, v.Warnings[0], "skills.common")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, Default(), 0o644))

	lib, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, lib.Recommendations(), 10)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
