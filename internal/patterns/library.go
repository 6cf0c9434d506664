// Package patterns holds the immutable reference data used by résumé analysis:
// profession and skill taxonomies plus the regular-expression sets for names,
// degrees, institutions, contact details and scoring checks.
//
// A Library is built once at process start and shared read-only by every
// request. Accessors hand out copies of the underlying slices.
package patterns

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"regexp"
	"slices"
	"strings"
)

//go:embed library.yaml
var defaultLibrary []byte

// Specialization narrows a qualification family, e.g. "software" within engineering.
type Specialization struct {
	Name     string
	Keywords []*Pattern
}

// Qualification is one degree family of the credential-driven profession lookup.
type Qualification struct {
	Family          string
	Base            string
	Patterns        []*Pattern
	Specializations []Specialization
}

// ContextPair ties a context word to its four surface patterns for one profession.
type ContextPair struct {
	Context string
	Term    *Pattern
	Surface []*Pattern
}

// Profession is one entry of the keyword-context taxonomy.
type Profession struct {
	Name     string
	Term     *Pattern
	Contexts []ContextPair
}

// SkillCategory groups skill terms, stored lower-case.
type SkillCategory struct {
	Name  string
	Terms []string
}

type NameRules struct {
	ScanLines      int
	LabelScanLines int
	NonNameWords   []string
	Line           *Pattern
	Label          *Pattern
}

type EducationRules struct {
	Window       int
	Degrees      []*Pattern
	Field        *Pattern
	Institutions []*Pattern
	Year         *Pattern
}

type ContactRules struct {
	Phones    []*Pattern
	Email     *Pattern
	LinkedIn  *Pattern
	Portfolio *Pattern
}

type ScoringRules struct {
	Table        *Pattern
	Image        *Pattern
	Bullet       *Pattern
	Sections     []*Pattern
	Quantifiable *Pattern
	ActionVerbs  []*Pattern
	CommonSkills []*Pattern
}

// Library is the compiled pattern set. The zero value is not usable; build one
// with Load, LoadFile or Parse.
type Library struct {
	name            NameRules
	headerLines     int
	qualifications  []Qualification
	professions     []Profession
	technical       []SkillCategory
	soft            []SkillCategory
	education       EducationRules
	contact         ContactRules
	scoring         ScoringRules
	recommendations []string
}

// Load compiles the embedded default library.
func Load() (*Library, error) {
	return Parse(defaultLibrary)
}

// LoadFile compiles a library from a YAML file on disk.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern library %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns a copy of the embedded YAML document.
func Default() []byte {
	return slices.Clone(defaultLibrary)
}

// Parse compiles a library from YAML. Warnings are logged; errors fail the load.
func Parse(data []byte) (*Library, error) {
	lib, v := build(data)
	if !v.OK() {
		return nil, fmt.Errorf("invalid pattern library: %s", strings.Join(v.Errors, "; "))
	}
	for _, w := range v.Warnings {
		log.Printf("[Patterns] warning: %s", w)
	}
	return lib, nil
}

func (l *Library) Name() NameRules {
	r := l.name
	r.NonNameWords = slices.Clone(r.NonNameWords)
	return r
}

// HeaderLines is the number of leading lines treated as the header region.
func (l *Library) HeaderLines() int {
	return l.headerLines
}

func (l *Library) Qualifications() []Qualification {
	out := make([]Qualification, len(l.qualifications))
	for i, q := range l.qualifications {
		q.Patterns = slices.Clone(q.Patterns)
		specs := make([]Specialization, len(q.Specializations))
		for j, s := range q.Specializations {
			s.Keywords = slices.Clone(s.Keywords)
			specs[j] = s
		}
		q.Specializations = specs
		out[i] = q
	}
	return out
}

func (l *Library) Professions() []Profession {
	out := make([]Profession, len(l.professions))
	for i, p := range l.professions {
		ctxs := make([]ContextPair, len(p.Contexts))
		for j, c := range p.Contexts {
			c.Surface = slices.Clone(c.Surface)
			ctxs[j] = c
		}
		p.Contexts = ctxs
		out[i] = p
	}
	return out
}

func (l *Library) TechnicalSkills() []SkillCategory {
	return cloneCategories(l.technical)
}

func (l *Library) SoftSkills() []SkillCategory {
	return cloneCategories(l.soft)
}

func (l *Library) Education() EducationRules {
	r := l.education
	r.Degrees = slices.Clone(r.Degrees)
	r.Institutions = slices.Clone(r.Institutions)
	return r
}

func (l *Library) Contact() ContactRules {
	r := l.contact
	r.Phones = slices.Clone(r.Phones)
	return r
}

func (l *Library) Scoring() ScoringRules {
	r := l.scoring
	r.Sections = slices.Clone(r.Sections)
	r.ActionVerbs = slices.Clone(r.ActionVerbs)
	r.CommonSkills = slices.Clone(r.CommonSkills)
	return r
}

// Recommendations is the fixed advice list attached to every report.
func (l *Library) Recommendations() []string {
	return slices.Clone(l.recommendations)
}

func cloneCategories(in []SkillCategory) []SkillCategory {
	out := make([]SkillCategory, len(in))
	for i, c := range in {
		c.Terms = slices.Clone(c.Terms)
		out[i] = c
	}
	return out
}

// compiler accumulates compile failures so a single pass reports all of them.
type compiler struct {
	v *Validation
}

func (c compiler) one(where, source string) *Pattern {
	p, err := compile(source)
	if err != nil {
		c.v.addErr("%s: %v", where, err)
		return nil
	}
	return p
}

func (c compiler) many(where string, sources []string) []*Pattern {
	out := make([]*Pattern, 0, len(sources))
	for i, s := range sources {
		if p := c.one(fmt.Sprintf("%s[%d]", where, i), s); p != nil {
			out = append(out, p)
		}
	}
	return out
}

func (c compiler) words(where string, terms []string) []*Pattern {
	out := make([]*Pattern, 0, len(terms))
	for _, t := range terms {
		p, err := wordPattern(t)
		if err != nil {
			c.v.addErr("%s %q: %v", where, t, err)
			continue
		}
		out = append(out, p)
	}
	return out
}

func surfacePatterns(context, profession string) []string {
	c := regexp.QuoteMeta(context)
	p := regexp.QuoteMeta(profession)
	return []string{
		`(?i)\b` + c + `\s+` + p + `\b`,
		`(?i)\b` + p + `\s+` + c + `\b`,
		`(?i)\b` + p + `\s*\([^)]*` + c + `[^)]*\)`,
		`(?i)\b` + c + `\s*\([^)]*` + p + `[^)]*\)`,
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

func build(data []byte) (*Library, Validation) {
	doc, v := decode(data)
	if !v.OK() {
		return nil, v
	}
	c := compiler{v: &v}

	lib := &Library{
		name: NameRules{
			ScanLines:      doc.Name.ScanLines,
			LabelScanLines: doc.Name.LabelScanLines,
			NonNameWords:   lowerAll(doc.Name.NonNameWords),
			Line:           c.one("name.pattern", doc.Name.Pattern),
			Label:          c.one("name.label_pattern", doc.Name.LabelPattern),
		},
		headerLines:     doc.Profession.HeaderLines,
		recommendations: slices.Clone(doc.Recommendations),
	}

	for _, q := range doc.Profession.Qualifications {
		where := "profession.qualifications." + q.Family
		qual := Qualification{
			Family:   q.Family,
			Base:     q.Base,
			Patterns: c.many(where+".patterns", q.Patterns),
		}
		for _, s := range q.Specializations {
			qual.Specializations = append(qual.Specializations, Specialization{
				Name:     strings.ToLower(s.Name),
				Keywords: c.words(where+".specializations."+s.Name, s.Keywords),
			})
		}
		lib.qualifications = append(lib.qualifications, qual)
	}

	for _, t := range doc.Profession.Taxonomy {
		name := strings.ToLower(t.Profession)
		where := "profession.taxonomy." + name
		term, err := wordPattern(name)
		if err != nil {
			v.addErr("%s: %v", where, err)
			continue
		}
		prof := Profession{Name: name, Term: term}
		for _, ctx := range lowerAll(t.Contexts) {
			ctxTerm, err := wordPattern(ctx)
			if err != nil {
				v.addErr("%s context %q: %v", where, ctx, err)
				continue
			}
			prof.Contexts = append(prof.Contexts, ContextPair{
				Context: ctx,
				Term:    ctxTerm,
				Surface: c.many(where+"."+ctx, surfacePatterns(ctx, name)),
			})
		}
		lib.professions = append(lib.professions, prof)
	}

	for _, cat := range doc.Skills.Technical {
		lib.technical = append(lib.technical, SkillCategory{Name: cat.Category, Terms: lowerAll(cat.Terms)})
	}
	for _, cat := range doc.Skills.Soft {
		lib.soft = append(lib.soft, SkillCategory{Name: cat.Category, Terms: lowerAll(cat.Terms)})
	}

	lib.education = EducationRules{
		Window:       doc.Education.Window,
		Degrees:      c.many("education.degree_patterns", doc.Education.DegreePatterns),
		Field:        c.one("education.field_pattern", doc.Education.FieldPattern),
		Institutions: c.many("education.institution_patterns", doc.Education.InstitutionPatterns),
		Year:         c.one("education.year_pattern", doc.Education.YearPattern),
	}

	lib.contact = ContactRules{
		Phones:    c.many("contact.phone_patterns", doc.Contact.PhonePatterns),
		Email:     c.one("contact.email_pattern", doc.Contact.EmailPattern),
		LinkedIn:  c.one("contact.linkedin_pattern", doc.Contact.LinkedInPattern),
		Portfolio: c.one("contact.portfolio_pattern", doc.Contact.PortfolioPattern),
	}

	lib.scoring = ScoringRules{
		Table:        c.one("scoring.table_pattern", doc.Scoring.TablePattern),
		Image:        c.one("scoring.image_pattern", doc.Scoring.ImagePattern),
		Bullet:       c.one("scoring.bullet_pattern", doc.Scoring.BulletPattern),
		Sections:     c.many("scoring.section_patterns", doc.Scoring.SectionPatterns),
		Quantifiable: c.one("scoring.quantifiable_pattern", doc.Scoring.QuantifiablePattern),
		ActionVerbs:  c.words("scoring.action_verbs", lowerAll(doc.Scoring.ActionVerbs)),
		CommonSkills: c.words("skills.common", lowerAll(doc.Skills.Common)),
	}

	if !v.OK() {
		return nil, v
	}
	return lib, v
}
