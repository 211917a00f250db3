// Package extract pulls structured candidate fields out of free-text model
// output. Extraction is deliberately shape-based, one fixed pattern per record
// type, because the generation contract is unstructured text; a structural
// mismatch yields no candidate rather than an error.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// Extractor pulls a candidate record out of raw model output.
type Extractor interface {
	// Extract returns the candidate record and whether the fixed shape
	// matched at all.
	Extract(text string) (models.Record, bool)
}

var (
	personsPattern = regexp.MustCompile(`\{\s*"userName":\s*"[^"]+",\s*"password":\s*"[^"]+",\s*"email":\s*"[^"]+",\s*"firstName":\s*"[^"]+",\s*"lastName":\s*"[^"]+",\s*"birthDate":\s*"[^"]+"\s*\}`)
	badgesPattern  = regexp.MustCompile(`\{\s*"badgeName":\s*"[^"]+",\s*"badgeDescription":\s*"[^"]+",\s*"badgeIssuedOn":\s*"\d{4}-\d{2}-\d{2}"\s*\}`)
	goalsPattern   = regexp.MustCompile(`\{\s*"type":\s*"[^"]+",\s*"level":\s*"[^"]+",\s*"description":\s*"[^"]+"\s*\}`)
	orgsPattern    = regexp.MustCompile(`\{\s*"organisationName":\s*"[^"]+",\s*"abbreviation":\s*"[^"]+",\s*"orgDescription":\s*"[^"]+",\s*"orgWebsite":\s*"https://[^"]+",\s*"orgImage":\s*"https://[^"]+",\s*"orgTags":\s*"[^"]+",\s*"orgLocation":\s*"[^"]+"\s*\}`)
)

// ForType returns the extractor for a record type.
func ForType(rt models.RecordType) Extractor {
	switch rt {
	case models.TypePersons:
		return &shapeExtractor{pattern: personsPattern, transform: titleCaseNames}
	case models.TypeBadges:
		return &shapeExtractor{pattern: badgesPattern}
	case models.TypeGoals:
		return &shapeExtractor{pattern: goalsPattern}
	case models.TypeOrganisations:
		return &shapeExtractor{pattern: orgsPattern}
	case models.TypeActivities:
		return &activitiesExtractor{}
	}
	return &shapeExtractor{pattern: goalsPattern}
}

// shapeExtractor matches one fixed flat JSON shape and decodes the matched
// span only.
type shapeExtractor struct {
	pattern   *regexp.Regexp
	transform func(models.Record) models.Record
}

func (e *shapeExtractor) Extract(text string) (models.Record, bool) {
	match := e.pattern.FindString(normalize(text))
	if match == "" {
		return nil, false
	}

	var rec models.Record
	if err := json.Unmarshal([]byte(match), &rec); err != nil {
		return nil, false
	}

	if e.transform != nil {
		rec = e.transform(rec)
	}
	return rec, true
}

// titleCaseNames normalizes person name casing the way the validation rules
// expect.
func titleCaseNames(rec models.Record) models.Record {
	for _, attr := range []string{"firstName", "lastName"} {
		if s, ok := rec[attr].(string); ok {
			rec[attr] = TitleCase(s)
		}
	}
	return rec
}

// normalize flattens line breaks and smart quotes before pattern matching.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "“", `"`)
	text = strings.ReplaceAll(text, "”", `"`)
	return text
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ContainsDigit reports whether s carries any decimal digit.
func ContainsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// Validate applies the type-specific acceptance rules to an extracted
// candidate. Persons: first/last names digit-free; goals: type, level and
// description digit-free. Other types accept any structurally matching
// candidate.
func Validate(rt models.RecordType, rec models.Record) bool {
	switch rt {
	case models.TypePersons:
		return !ContainsDigit(rec.StringValue("firstName")) &&
			!ContainsDigit(rec.StringValue("lastName"))
	case models.TypeGoals:
		return !ContainsDigit(rec.StringValue("type")) &&
			!ContainsDigit(rec.StringValue("level")) &&
			!ContainsDigit(rec.StringValue("description"))
	}
	return true
}

// Field extracts a single quoted attribute value from raw output, used by the
// anonymization path which prompts per attribute set rather than per shape.
func Field(text, attr string) (string, bool) {
	pattern := regexp.MustCompile(`"` + regexp.QuoteMeta(attr) + `"\s*:\s*"([^"]*)"`)
	match := pattern.FindStringSubmatch(normalize(text))
	if match == nil {
		return "", false
	}
	return match[1], true
}
