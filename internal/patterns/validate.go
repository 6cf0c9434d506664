package patterns

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Validation collects problems found in a pattern library document.
// Errors prevent the library from loading; warnings do not.
type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Check validates a YAML library document without keeping the result.
// Every expression is compiled, so regex syntax errors are reported too.
func Check(data []byte) Validation {
	_, v := build(data)
	return v
}

func decode(data []byte) (document, Validation) {
	var (
		doc document
		v   Validation
	)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		v.addErr("yaml: %v", err)
		return doc, v
	}

	if err := validate.Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			v.addErr("%v", err)
			return doc, v
		}
		for _, fe := range fieldErrs {
			if fe.Param() != "" {
				v.addErr("%s: failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
			} else {
				v.addErr("%s: failed %s", fe.Namespace(), fe.Tag())
			}
		}
		return doc, v
	}

	warnDuplicates(&v, doc)
	return doc, v
}

func warnDuplicates(v *Validation, doc document) {
	dup := func(where string, items []string) {
		seen := make(map[string]bool, len(items))
		for _, it := range items {
			key := strings.ToLower(strings.TrimSpace(it))
			if seen[key] {
				v.addWarn("%s: duplicate entry %q", where, it)
			}
			seen[key] = true
		}
	}

	families := make([]string, 0, len(doc.Profession.Qualifications))
	for _, q := range doc.Profession.Qualifications {
		families = append(families, q.Family)
		for _, s := range q.Specializations {
			dup("profession.qualifications."+q.Family+"."+s.Name, s.Keywords)
		}
	}
	dup("profession.qualifications", families)

	professions := make([]string, 0, len(doc.Profession.Taxonomy))
	for _, t := range doc.Profession.Taxonomy {
		professions = append(professions, t.Profession)
		dup("profession.taxonomy."+t.Profession, t.Contexts)
	}
	dup("profession.taxonomy", professions)

	var technical, soft []string
	for _, c := range doc.Skills.Technical {
		technical = append(technical, c.Terms...)
	}
	for _, c := range doc.Skills.Soft {
		soft = append(soft, c.Terms...)
	}
	dup("skills.technical", technical)
	dup("skills.soft", soft)
	dup("skills.common", doc.Skills.Common)
	dup("scoring.action_verbs", doc.Scoring.ActionVerbs)

	if len(doc.Recommendations) != 10 {
		v.addWarn("recommendations: expected 10 entries, found %d", len(doc.Recommendations))
	}
}
