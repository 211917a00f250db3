package generator

import (
	"github.com/synthdata-io/synth-engine/pkg/models"
)

// Strategy identifies how an attribute's value is produced. Each record type
// declares a table mapping attribute names to strategies; names outside the
// table fall back to StrategyAtomic with a generic word value.
type Strategy int

const (
	// StrategyAtomic delegates to the fake-value provider with a category
	// matching the attribute's semantic type.
	StrategyAtomic Strategy = iota

	// StrategyComposite combines already-resolved state, e.g. userName from
	// firstName and lastName.
	StrategyComposite

	// StrategyCorpusCopy copies the field from a sampled reference record,
	// falling back to an atomic value when absent.
	StrategyCorpusCopy

	// StrategyConstrainedChoice picks from a fixed enumerated vocabulary and
	// propagates matching derived values deterministically.
	StrategyConstrainedChoice

	// StrategyTemporalDerived samples a date relative to a sibling date
	// resolved earlier in the same record.
	StrategyTemporalDerived
)

// attributeOrder declares each type's dependency-respecting resolution order.
// Requested attributes are processed in this order regardless of how the
// caller listed them; unknown attributes are appended last.
var attributeOrder = map[models.RecordType][]string{
	models.TypePersons: {
		"firstName", "lastName", "userName", "email", "password", "birthDate",
		"badgeName", "badgeDescription", "badgeIssuedOn",
		"address", "phone_number", "company", "job",
	},
	models.TypeBadges: {
		"badgeName", "badgeDescription", "badgeIssuedOn",
	},
	models.TypeActivities: {
		"title", "description", "startDate", "endDate", "geoinfo", "duration",
		"purpose", "role", "rank", "phase", "unit", "level", "taskType", "bereich",
	},
	models.TypeOrganisations: {
		"organisationName", "abbreviation", "orgDescription", "orgWebsite",
		"orgImage", "orgTags", "orgLocation",
	},
	models.TypeGoals: {
		"type", "level", "description",
	},
}

var strategyTables = map[models.RecordType]map[string]Strategy{
	models.TypePersons: {
		"firstName":        StrategyAtomic,
		"lastName":         StrategyAtomic,
		"userName":         StrategyComposite,
		"email":            StrategyComposite,
		"password":         StrategyAtomic,
		"birthDate":        StrategyAtomic,
		"badgeName":        StrategyAtomic,
		"badgeDescription": StrategyAtomic,
		"badgeIssuedOn":    StrategyAtomic,
		"address":          StrategyAtomic,
		"phone_number":     StrategyAtomic,
		"company":          StrategyAtomic,
		"job":              StrategyAtomic,
	},
	models.TypeBadges: {
		"badgeName":        StrategyConstrainedChoice,
		"badgeDescription": StrategyConstrainedChoice,
		"badgeIssuedOn":    StrategyAtomic,
	},
	models.TypeActivities: {
		"title":       StrategyCorpusCopy,
		"description": StrategyCorpusCopy,
		"startDate":   StrategyCorpusCopy,
		"endDate":     StrategyTemporalDerived,
		"geoinfo":     StrategyCorpusCopy,
		"duration":    StrategyCorpusCopy,
		"purpose":     StrategyCorpusCopy,
		"role":        StrategyCorpusCopy,
		"rank":        StrategyCorpusCopy,
		"phase":       StrategyCorpusCopy,
		"unit":        StrategyCorpusCopy,
		"level":       StrategyCorpusCopy,
		"taskType":    StrategyCorpusCopy,
		"bereich":     StrategyCorpusCopy,
	},
	models.TypeOrganisations: {
		"organisationName": StrategyConstrainedChoice,
		"abbreviation":     StrategyConstrainedChoice,
		"orgDescription":   StrategyAtomic,
		"orgWebsite":       StrategyAtomic,
		"orgImage":         StrategyAtomic,
		"orgTags":          StrategyAtomic,
		"orgLocation":      StrategyAtomic,
	},
	models.TypeGoals: {
		"type":        StrategyConstrainedChoice,
		"level":       StrategyConstrainedChoice,
		"description": StrategyAtomic,
	},
}

// StrategyFor returns the declared strategy for an attribute, StrategyAtomic
// for names outside the type's vocabulary.
func StrategyFor(rt models.RecordType, attr string) Strategy {
	if table, ok := strategyTables[rt]; ok {
		if s, ok := table[attr]; ok {
			return s
		}
	}
	return StrategyAtomic
}

// keyAttribute names the discriminating attribute deduplicated across output
// records during corpus-driven synthesis.
var keyAttribute = map[models.RecordType]string{
	models.TypePersons:       "userName",
	models.TypeBadges:        "badgeName",
	models.TypeActivities:    "title",
	models.TypeOrganisations: "organisationName",
	models.TypeGoals:         "type",
}

// orderAttributes maps a caller-supplied attribute set onto the type's
// declared dependency order. Unknown names keep their caller order at the end.
func orderAttributes(rt models.RecordType, requested []string) []string {
	want := make(map[string]bool, len(requested))
	for _, attr := range requested {
		want[attr] = true
	}

	ordered := make([]string, 0, len(requested))
	for _, attr := range attributeOrder[rt] {
		if want[attr] {
			ordered = append(ordered, attr)
			want[attr] = false
		}
	}
	for _, attr := range requested {
		if want[attr] {
			ordered = append(ordered, attr)
			want[attr] = false
		}
	}
	return ordered
}
