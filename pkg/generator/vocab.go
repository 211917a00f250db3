package generator

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed vocab.yaml
var vocabYAML []byte

// Vocab holds the fixed enumerated domain values constrained-choice
// attributes draw from, and the lookup tables composite attributes propagate
// from.
type Vocab struct {
	BadgeNames   []string          `yaml:"badge_names"`
	GoalTypes    []string          `yaml:"goal_types"`
	GoalLevels   []string          `yaml:"goal_levels"`
	EmailDomains []string          `yaml:"email_domains"`
	Organisation map[string]string `yaml:"organisations"`

	// organisationNames caches sorted map keys for deterministic sampling.
	organisationNames []string
}

// LoadVocab parses the embedded vocabulary tables.
func LoadVocab() (*Vocab, error) {
	var v Vocab
	if err := yaml.Unmarshal(vocabYAML, &v); err != nil {
		return nil, fmt.Errorf("parse vocab: %w", err)
	}
	for name := range v.Organisation {
		v.organisationNames = append(v.organisationNames, name)
	}
	sort.Strings(v.organisationNames)
	return &v, nil
}

// OrganisationNames returns the organisation names in stable order.
func (v *Vocab) OrganisationNames() []string {
	return v.organisationNames
}

// Abbreviation looks up the abbreviation for an organisation name, empty when
// unknown.
func (v *Vocab) Abbreviation(orgName string) string {
	return v.Organisation[orgName]
}
