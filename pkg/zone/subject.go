package zone

import (
	"sort"
	"strings"
)

// Subject selects the readiness measure being compared.
type Subject string

const (
	AdvancedLiteracy Subject = "Advanced Literacy"
	BasicLiteracy    Subject = "Basic Literacy"
	BasicNumeracy    Subject = "Basic Numeracy"
	Interest         Subject = "Interest"
	Reading          Subject = "Reading"
	Math             Subject = "Math"
)

// Subjects lists every recognised subject, kindergarten measures first.
var Subjects = []Subject{AdvancedLiteracy, BasicLiteracy, BasicNumeracy, Interest, Reading, Math}

// ParseSubject accepts a subject name or its slug, in any case.
func ParseSubject(s string) (Subject, error) {
	for _, subject := range Subjects {
		if strings.EqualFold(s, string(subject)) || strings.EqualFold(s, subject.Slug()) {
			return subject, nil
		}
	}
	return "", &UnknownSelectorError{Selector: s}
}

// Kindergarten reports whether the subject comes from the EDI survey, which
// has one percentage row per zone and no grades.
func (s Subject) Kindergarten() bool {
	switch s {
	case AdvancedLiteracy, BasicLiteracy, BasicNumeracy, Interest:
		return true
	}
	return false
}

func (s Subject) Layout() *Layout {
	if s.Kindergarten() {
		return &KindergartenLayout
	}
	return &ElementaryLayout
}

func (s Subject) Policy() Policy {
	if s.Kindergarten() {
		return PolicySingle
	}
	return PolicySum
}

// Slug is the lower-case, dash separated subject name, e.g. "basic-literacy".
func (s Subject) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(s)), " ", "-")
}

// Selectors maps each subject to the identifier of its source table.
type Selectors map[Subject]string

// DefaultSelectors returns the district's published file names. Math has no
// published source yet and must be configured explicitly.
func DefaultSelectors() Selectors {
	return Selectors{
		AdvancedLiteracy: "edi-advanced-literacy.csv",
		BasicLiteracy:    "edi-basic-literacy.csv",
		BasicNumeracy:    "edi-basic-numeracy.csv",
		Interest:         "edi-interest.csv",
		Reading:          "i-ready-reading.csv",
	}
}

// Source returns the source identifier configured for subject.
func (s Selectors) Source(subject Subject) (string, error) {
	if _, err := ParseSubject(string(subject)); err != nil {
		return "", err
	}

	source, ok := s[subject]
	if !ok || source == "" {
		return "", &UnknownSelectorError{Selector: string(subject), Reason: "no source configured"}
	}
	return source, nil
}

// Locations returns the distinct configured source identifiers, sorted.
func (s Selectors) Locations() []string {
	seen := make(map[string]bool, len(s))
	var locations []string
	for _, l := range s {
		if l != "" && !seen[l] {
			seen[l] = true
			locations = append(locations, l)
		}
	}
	sort.Strings(locations)
	return locations
}
