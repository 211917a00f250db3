package llmgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/llm"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

const validGoalOutput = `{"type": "Erste Hilfe", "level": "Gold", "description": "Kurs abgeschlossen"}`

// invalidGoalOutput matches the shape but fails the digit-free rule.
const invalidGoalOutput = `{"type": "Erste Hilfe", "level": "Stufe 2", "description": "Kurs"}`

func fallbackRecord(rt models.RecordType, attrs []string) models.Record {
	rec := models.Record{}
	for _, attr := range attrs {
		rec[attr] = "fallback"
	}
	return rec
}

func newTestAdapter(gen llm.TextGenerator, maxAttempts int) *Adapter {
	return New(gen, maxAttempts, 0.9, fallbackRecord, zap.NewNop())
}

func TestGenerate_AcceptsFirstValidOutput(t *testing.T) {
	mock := llm.NewMockTextGenerator(validGoalOutput)
	adapter := newTestAdapter(mock, 5)

	res, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type", "level"}, 2)
	require.NoError(t, err)

	require.Len(t, res.Records, 2)
	assert.Len(t, res.Attempts, 2)
	assert.Equal(t, []bool{true, true}, res.Validity)
	assert.False(t, res.Capped)
	assert.Equal(t, 2, mock.GenerateCalls)

	// Output carries exactly the requested attributes.
	for _, rec := range res.Records {
		assert.Len(t, rec, 2)
		assert.Equal(t, "Erste Hilfe", rec.StringValue("type"))
		assert.Equal(t, "Gold", rec.StringValue("level"))
	}
}

func TestGenerate_RetriesInvalidOutput(t *testing.T) {
	mock := llm.NewMockTextGenerator(invalidGoalOutput, "no structure at all", validGoalOutput)
	adapter := newTestAdapter(mock, 5)

	res, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type"}, 1)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, []bool{false, false, true}, res.Validity)
	assert.Len(t, res.Attempts, 3)
	assert.False(t, res.Capped)
}

func TestGenerate_CapsAndFallsBack(t *testing.T) {
	mock := llm.NewMockTextGenerator("never anything useful")
	adapter := newTestAdapter(mock, 3)

	res, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type", "level"}, 1)
	require.NoError(t, err)

	assert.True(t, res.Capped)
	assert.Equal(t, []bool{false, false, false}, res.Validity)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "fallback", res.Records[0].StringValue("type"))
	assert.Equal(t, 3, mock.GenerateCalls)
}

func TestGenerate_NonRetryableErrorAborts(t *testing.T) {
	authErr := &llm.Error{Type: llm.ErrTypeAuth, Message: "bad key", Retryable: false}
	mock := &llm.MockTextGenerator{
		GenerateFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			return "", authErr
		},
	}
	adapter := newTestAdapter(mock, 3)

	_, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type"}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, authErr)
}

func TestGenerate_FillsMissingRequestedAttributes(t *testing.T) {
	mock := llm.NewMockTextGenerator(validGoalOutput)
	adapter := newTestAdapter(mock, 5)

	res, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type", "customField"}, 1)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Erste Hilfe", res.Records[0].StringValue("type"))
	assert.True(t, res.Records[0].Has("customField"))
	assert.Equal(t, "", res.Records[0].StringValue("customField"))
}

func TestAnonymize_AcceptsDifferingCandidate(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"firstName": "Clara", "lastName": "Neumann"}`)
	adapter := newTestAdapter(mock, 5)
	pool := corpus.Pool{{"firstName": "source-first", "lastName": "source-last", "memberSince": "2001"}}

	res, err := adapter.Anonymize(context.Background(), models.TypePersons, []string{"firstName", "lastName"}, pool)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Clara", res.Records[0].StringValue("firstName"))
	assert.Equal(t, "Neumann", res.Records[0].StringValue("lastName"))
	assert.Equal(t, "2001", res.Records[0].StringValue("memberSince"))
	assert.Nil(t, res.Validity)
}

func TestAnonymize_EchoedValueIsEmptied(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"firstName": "source-first"}`)
	adapter := newTestAdapter(mock, 5)
	pool := corpus.Pool{{"firstName": "source-first"}}

	res, err := adapter.Anonymize(context.Background(), models.TypePersons, []string{"firstName"}, pool)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.Equal(t, "", res.Records[0].StringValue("firstName"))
}

func TestAnonymize_MissingCandidateIsEmptied(t *testing.T) {
	mock := llm.NewMockTextGenerator("nothing extractable")
	adapter := newTestAdapter(mock, 5)
	pool := corpus.Pool{{"firstName": "source-first"}}

	res, err := adapter.Anonymize(context.Background(), models.TypePersons, []string{"firstName"}, pool)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.True(t, res.Records[0].Has("firstName"))
	assert.Equal(t, "", res.Records[0].StringValue("firstName"))
}

func TestAnonymize_AbsentAttributeStaysAbsent(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"firstName": "Clara", "lastName": "Neumann"}`)
	adapter := newTestAdapter(mock, 5)
	pool := corpus.Pool{{"lastName": "source-last"}}

	res, err := adapter.Anonymize(context.Background(), models.TypePersons, []string{"firstName", "lastName"}, pool)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	assert.False(t, res.Records[0].Has("firstName"))
	assert.Equal(t, "Neumann", res.Records[0].StringValue("lastName"))
}

func TestAdapter_CallCountsPerPass(t *testing.T) {
	mock := llm.NewMockTextGenerator(validGoalOutput)
	adapter := newTestAdapter(mock, 5)

	res, err := adapter.Generate(context.Background(), models.TypeGoals, []string{"type"}, 3)
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	assert.Equal(t, 3, mock.GenerateCalls)

	// A fresh pass over the same generator starts counting from zero.
	mock.Reset()
	pool := corpus.Pool{{"type": "source-type"}, {"type": "source-type"}}
	anonRes, err := adapter.Anonymize(context.Background(), models.TypeGoals, []string{"type"}, pool)
	require.NoError(t, err)
	require.Len(t, anonRes.Records, 2)
	assert.Equal(t, 2, mock.GenerateCalls)
}

func TestAnonymize_SourceUntouched(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"firstName": "Clara"}`)
	adapter := newTestAdapter(mock, 5)
	pool := corpus.Pool{{"firstName": "source-first"}}

	_, err := adapter.Anonymize(context.Background(), models.TypePersons, []string{"firstName"}, pool)
	require.NoError(t, err)
	assert.Equal(t, "source-first", pool[0].StringValue("firstName"))
}
