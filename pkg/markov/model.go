// Package markov implements the per-attribute corpus text model. A model is
// trained on the space-joined values of one attribute across a corpus slice
// and samples statistically-plausible replacement strings from the token
// transition structure. Sampling may fail; callers fall back to the
// fake-value provider.
package markov

import (
	"strings"

	"github.com/mb-14/gomarkov"

	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

const (
	// sampleTries bounds internal generation attempts, mirroring the usual
	// sentence-model default of 100 tries.
	sampleTries = 100

	// maxTokens caps a single sampled sentence so a cyclic chain cannot walk
	// forever.
	maxTokens = 50
)

// Model is a trained single-attribute text model.
type Model struct {
	chain *gomarkov.Chain
}

// Train builds a model from the named attribute's values across the corpus
// slice. Returns (nil, false) when no record in the slice carries the
// attribute, in which case the caller must fall back to an atomic fake value.
func Train(slice []models.Record, attr string) (*Model, bool) {
	values := corpus.Pool(slice).Values(attr)
	if len(values) == 0 {
		return nil, false
	}

	text := strings.TrimSpace(strings.Join(values, " "))
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, false
	}

	chain := gomarkov.NewChain(1)
	chain.Add(tokens)
	return &Model{chain: chain}, true
}

// Sample produces a new string from the model, or ("", false) when no
// acceptable sentence emerges within the internal attempt budget.
func (m *Model) Sample() (string, bool) {
	for try := 0; try < sampleTries; try++ {
		if s, ok := m.walk(); ok {
			return s, true
		}
	}
	return "", false
}

// walk runs one start-to-end traversal of the chain.
func (m *Model) walk() (string, bool) {
	tokens := []string{gomarkov.StartToken}
	for tokens[len(tokens)-1] != gomarkov.EndToken {
		if len(tokens) > maxTokens {
			return "", false
		}
		next, err := m.chain.Generate(gomarkov.NGram(tokens[len(tokens)-1:]))
		if err != nil {
			return "", false
		}
		tokens = append(tokens, next)
	}

	sentence := strings.TrimSpace(strings.Join(tokens[1:len(tokens)-1], " "))
	if sentence == "" {
		return "", false
	}
	return sentence, true
}
