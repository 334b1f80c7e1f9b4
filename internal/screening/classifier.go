// Package screening holds the question-authoring engine and the heuristic
// classifier that buckets free-text screening answers for filtering.
package screening

import (
	"regexp"
	"strings"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/job"
)

// Experience buckets.
const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// Education buckets, lowest to highest.
const (
	EducationHighSchool  = "high_school"
	EducationCertificate = "certificate"
	EducationDiploma     = "diploma"
	EducationAssociate   = "associate"
	EducationBachelor    = "bachelor"
	EducationMaster      = "master"
	EducationDoctorate   = "doctorate"
)

// Classifier turns a bucket name into the patterns that recognize it in a
// free-text answer. Patterns are case-insensitive regular expressions valid
// both for Go's regexp package and postgres's ~* operator, so the query
// builder can push matching into SQL while tests exercise the same rules
// in-process. The classification is a best-effort heuristic over unstructured
// text, not a parse; it exists behind this interface so a structured answer
// type can replace it without touching the query layer.
type Classifier interface {
	Patterns(kind job.FilterKind, bucket string) ([]string, bool)
	Match(kind job.FilterKind, bucket, answer string) bool
}

type PatternClassifier struct {
	patterns map[job.FilterKind]map[string][]string
	compiled map[string]*regexp.Regexp
}

func NewPatternClassifier() *PatternClassifier {
	c := &PatternClassifier{
		patterns: map[job.FilterKind]map[string][]string{
			job.FilterExperience: {
				// Year counts are matched with a leading boundary so "12 years"
				// does not satisfy the single-digit entry patterns.
				ExperienceEntry: {
					`(^|[^0-9])[0-2]\s*(\+\s*)?(years?|yrs?)`,
					`entry[- ]?level`,
					`\mintern`,
					`fresh\s*graduate`,
					`no\s+(prior\s+)?experience`,
					`less\s+than\s+(one|two|1|2)\s+years?`,
				},
				ExperienceMid: {
					`(^|[^0-9])[3-5]\s*(years?|yrs?)`,
					`mid[- ]?level`,
					`(three|four|five)\s+years?`,
				},
				ExperienceSenior: {
					`(^|[^0-9])([5-9]|[1-9][0-9])\s*\+\s*(years?|yrs?)`,
					`(^|[^0-9])([6-9]|[1-9][0-9])\s*(years?|yrs?)`,
					`senior`,
					`(over|more\s+than)\s+(five|5)\s+years?`,
					`(a\s+)?decade`,
				},
			},
			job.FilterEducation: {
				EducationHighSchool:  {`high\s*school`, `secondary\s+school`, `kcse`, `ged`},
				EducationCertificate: {`certificate`, `certification`, `certified`},
				EducationDiploma:     {`diploma`},
				EducationAssociate:   {`associate`},
				EducationBachelor:    {`bachelor`, `\mb\.?sc?\.?\M`, `\mba\M`, `undergraduate\s+degree`},
				EducationMaster:      {`master`, `\mm\.?sc?\.?\M`, `\mmba\M`, `postgraduate\s+degree`},
				EducationDoctorate:   {`doctorate`, `doctoral`, `\mph\.?d\.?\M`},
			},
		},
		compiled: make(map[string]*regexp.Regexp),
	}
	for _, buckets := range c.patterns {
		for _, patterns := range buckets {
			for _, pattern := range patterns {
				c.compiled[pattern] = regexp.MustCompile(`(?i)` + goifyPattern(pattern))
			}
		}
	}
	return c
}

func (c *PatternClassifier) Patterns(kind job.FilterKind, bucket string) ([]string, bool) {
	buckets, ok := c.patterns[kind]
	if !ok {
		return nil, false
	}
	patterns, ok := buckets[strings.ToLower(strings.TrimSpace(bucket))]
	return patterns, ok
}

func (c *PatternClassifier) Match(kind job.FilterKind, bucket, answer string) bool {
	patterns, ok := c.Patterns(kind, bucket)
	if !ok {
		return false
	}
	for _, pattern := range patterns {
		if c.compiled[pattern].MatchString(answer) {
			return true
		}
	}
	return false
}

// goifyPattern translates the postgres-specific word-boundary escapes \m and
// \M into Go's \b so one pattern string serves both engines.
func goifyPattern(pattern string) string {
	pattern = strings.ReplaceAll(pattern, `\m`, `\b`)
	return strings.ReplaceAll(pattern, `\M`, `\b`)
}

func ValidExperienceBucket(bucket string) bool {
	switch bucket {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	default:
		return false
	}
}

func ValidEducationBucket(bucket string) bool {
	switch bucket {
	case EducationHighSchool, EducationCertificate, EducationDiploma,
		EducationAssociate, EducationBachelor, EducationMaster, EducationDoctorate:
		return true
	default:
		return false
	}
}
