package patterns

// The YAML document shape. Field-level constraints are enforced with
// go-playground/validator before any expression is compiled.

type document struct {
	Name            nameDoc       `yaml:"name"`
	Profession      professionDoc `yaml:"profession"`
	Skills          skillsDoc     `yaml:"skills"`
	Education       educationDoc  `yaml:"education"`
	Contact         contactDoc    `yaml:"contact"`
	Scoring         scoringDoc    `yaml:"scoring"`
	Recommendations []string      `yaml:"recommendations" validate:"min=1,dive,required"`
}

type nameDoc struct {
	ScanLines      int      `yaml:"scan_lines" validate:"gt=0"`
	LabelScanLines int      `yaml:"label_scan_lines" validate:"gt=0"`
	NonNameWords   []string `yaml:"non_name_words" validate:"min=1,dive,required"`
	Pattern        string   `yaml:"pattern" validate:"required"`
	LabelPattern   string   `yaml:"label_pattern" validate:"required"`
}

type professionDoc struct {
	HeaderLines    int                `yaml:"header_lines" validate:"gt=0"`
	Qualifications []qualificationDoc `yaml:"qualifications" validate:"dive"`
	Taxonomy       []taxonomyDoc      `yaml:"taxonomy" validate:"min=1,dive"`
}

type qualificationDoc struct {
	Family          string              `yaml:"family" validate:"required"`
	Base            string              `yaml:"base" validate:"required"`
	Patterns        []string            `yaml:"patterns" validate:"min=1,dive,required"`
	Specializations []specializationDoc `yaml:"specializations" validate:"dive"`
}

type specializationDoc struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords" validate:"min=1,dive,required"`
}

type taxonomyDoc struct {
	Profession string   `yaml:"profession" validate:"required"`
	Contexts   []string `yaml:"contexts" validate:"min=1,dive,required"`
}

type skillsDoc struct {
	Technical []categoryDoc `yaml:"technical" validate:"min=1,dive"`
	Soft      []categoryDoc `yaml:"soft" validate:"min=1,dive"`
	Common    []string      `yaml:"common" validate:"dive,required"`
}

type categoryDoc struct {
	Category string   `yaml:"category" validate:"required"`
	Terms    []string `yaml:"terms" validate:"min=1,dive,required"`
}

type educationDoc struct {
	Window              int      `yaml:"window" validate:"gte=0"`
	DegreePatterns      []string `yaml:"degree_patterns" validate:"min=1,dive,required"`
	FieldPattern        string   `yaml:"field_pattern" validate:"required"`
	InstitutionPatterns []string `yaml:"institution_patterns" validate:"min=1,dive,required"`
	YearPattern         string   `yaml:"year_pattern" validate:"required"`
}

type contactDoc struct {
	PhonePatterns    []string `yaml:"phone_patterns" validate:"min=1,dive,required"`
	EmailPattern     string   `yaml:"email_pattern" validate:"required"`
	LinkedInPattern  string   `yaml:"linkedin_pattern" validate:"required"`
	PortfolioPattern string   `yaml:"portfolio_pattern" validate:"required"`
}

type scoringDoc struct {
	TablePattern        string   `yaml:"table_pattern" validate:"required"`
	ImagePattern        string   `yaml:"image_pattern" validate:"required"`
	BulletPattern       string   `yaml:"bullet_pattern" validate:"required"`
	SectionPatterns     []string `yaml:"section_patterns" validate:"min=1,dive,required"`
	QuantifiablePattern string   `yaml:"quantifiable_pattern" validate:"required"`
	ActionVerbs         []string `yaml:"action_verbs" validate:"min=1,dive,required"`
}
