package models

import (
	"fmt"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
)

// RecordType identifies which attribute rule table and prompt templates apply.
type RecordType string

const (
	TypePersons       RecordType = "persons"
	TypeBadges        RecordType = "badges"
	TypeActivities    RecordType = "activities"
	TypeOrganisations RecordType = "organisations"
	TypeGoals         RecordType = "goals"
)

// RecordTypes lists every known record type.
var RecordTypes = []RecordType{TypePersons, TypeBadges, TypeActivities, TypeOrganisations, TypeGoals}

// ParseRecordType validates a caller-supplied type string.
func ParseRecordType(s string) (RecordType, error) {
	rt := RecordType(s)
	for _, known := range RecordTypes {
		if rt == known {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownRecordType, s)
}

// Mode selects between fabricating new records and masking existing ones.
type Mode string

const (
	ModeGenerate  Mode = "generate"
	ModeAnonymize Mode = "anonymize"
)

// Method selects the strategy family for a pass: rule tables backed by the
// fake-value provider and corpus models, or the generative-model adapter.
type Method string

const (
	MethodLibrary Method = "library"
	MethodLLM     Method = "llm"
)

// ParseMethod validates a caller-supplied method string.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodLibrary, MethodLLM:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownMethod, s)
}

// Record is one synthesized or anonymized entity as an attribute-value
// mapping. Values are strings, nested mappings (geo coordinates) or string
// slices (task types).
type Record map[string]any

// Clone returns a shallow copy so anonymization can overlay modified keys
// without touching the source record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Has reports whether the attribute is present on the record.
func (r Record) Has(attr string) bool {
	_, ok := r[attr]
	return ok
}

// StringValue returns the attribute rendered as a string, or "" when absent.
func (r Record) StringValue(attr string) string {
	v, ok := r[attr]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
