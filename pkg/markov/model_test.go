package markov

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

func TestTrain_MissingAttribute(t *testing.T) {
	records := []models.Record{{"title": "Blutspendeaktion"}}

	_, ok := Train(records, "description")
	assert.False(t, ok)
}

func TestTrain_EmptyValues(t *testing.T) {
	records := []models.Record{{"title": "   "}}

	_, ok := Train(records, "title")
	assert.False(t, ok)
}

func TestSample_SingleValue(t *testing.T) {
	records := []models.Record{{"title": "Blutspendeaktion im Ort"}}

	model, ok := Train(records, "title")
	require.True(t, ok)

	s, ok := model.Sample()
	require.True(t, ok)
	assert.NotEmpty(t, s)

	// An order-1 chain over a single linear sentence can only reproduce
	// tokens it has seen.
	for _, token := range strings.Fields(s) {
		assert.Contains(t, []string{"Blutspendeaktion", "im", "Ort"}, token)
	}
}

func TestSample_MultipleRecords(t *testing.T) {
	records := []models.Record{
		{"description": "Sammelaktion im Ort"},
		{"description": "Einsatz im Bezirk"},
	}

	model, ok := Train(records, "description")
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		s, ok := model.Sample()
		require.True(t, ok)
		assert.NotEmpty(t, strings.TrimSpace(s))
	}
}
