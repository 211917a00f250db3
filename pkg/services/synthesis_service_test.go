package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
	"github.com/synthdata-io/synth-engine/pkg/fake"
	"github.com/synthdata-io/synth-engine/pkg/generator"
	"github.com/synthdata-io/synth-engine/pkg/llm"
	"github.com/synthdata-io/synth-engine/pkg/llmgen"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

func newTestService(t *testing.T, mock *llm.MockTextGenerator) SynthesisService {
	t.Helper()
	gen, err := generator.New(fake.NewProvider(42), 42, zap.NewNop())
	require.NoError(t, err)
	adapter := llmgen.New(mock, 3, 0.9, gen.ScratchRecord, zap.NewNop())
	return NewSynthesisService(gen, adapter, zap.NewNop())
}

func TestSynthesize_UnknownType(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	_, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       "unknown",
		Attributes: []string{"firstName"},
		Count:      1,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownRecordType)
}

func TestSynthesize_EmptyAttributes(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	_, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:  models.TypePersons,
		Count: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyAttributes)
}

func TestSynthesize_UnknownMethod(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	_, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Method:     "faker",
		Count:      1,
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownMethod)
}

func TestSynthesize_NegativeCount(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	_, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Count:      -1,
	})
	assert.Error(t, err)
}

func TestSynthesize_AnonymizeRequiresCorpus(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	_, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Mode:       models.ModeAnonymize,
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingCorpus)
}

func TestSynthesize_LibraryGenerate(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypeGoals,
		Attributes: []string{"type", "level"},
		Count:      3,
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 3)
	require.NotNil(t, result.Metrics)
	assert.Len(t, result.Metrics.ResultsTimes, 4)
	assert.Nil(t, result.Metrics.ResultValidity)
	assert.GreaterOrEqual(t, result.Metrics.AvgTimePerRecord, 0.0)
}

func TestSynthesize_ZeroCount(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Count:      0,
	})
	require.NoError(t, err)

	assert.NotNil(t, result.Records)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0.0, result.Metrics.AvgTimePerRecord)
	assert.Equal(t, []float64{0}, result.Metrics.ResultsTimes)
}

func TestSynthesize_LibraryGenerateWithCorpus(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypeGoals,
		Attributes: []string{"type", "level"},
		Count:      2,
		Corpus: []models.Record{
			{"type": "Erste Hilfe", "level": "Gold"},
			{"type": "Funk", "level": "Silber"},
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	for _, rec := range result.Records {
		assert.True(t, rec.Has("type"))
		assert.True(t, rec.Has("level"))
	}
}

func TestSynthesize_GenerativeGenerate(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"type": "Erste Hilfe", "level": "Gold", "description": "Kurs"}`)
	svc := newTestService(t, mock)

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypeGoals,
		Attributes: []string{"type", "level"},
		Method:     models.MethodLLM,
		Count:      2,
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, []bool{true, true}, result.Metrics.ResultValidity)
	assert.False(t, result.Metrics.Capped)
}

func TestSynthesize_GenerativeCapped(t *testing.T) {
	mock := llm.NewMockTextGenerator("nothing usable")
	svc := newTestService(t, mock)

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypeGoals,
		Attributes: []string{"type"},
		Method:     models.MethodLLM,
		Count:      1,
	})
	require.NoError(t, err)

	assert.True(t, result.Metrics.Capped)
	require.Len(t, result.Records, 1)
	// The fallback record still carries the requested attribute.
	assert.True(t, result.Records[0].Has("type"))
}

func TestSynthesize_LibraryAnonymize(t *testing.T) {
	svc := newTestService(t, llm.NewMockTextGenerator())

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Mode:       models.ModeAnonymize,
		Corpus:     []models.Record{{"firstName": "source-first", "note": "kept"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.NotEqual(t, "source-first", result.Records[0].StringValue("firstName"))
	assert.Equal(t, "kept", result.Records[0].StringValue("note"))
}

func TestSynthesize_GenerativeAnonymize(t *testing.T) {
	mock := llm.NewMockTextGenerator(`{"firstName": "Clara"}`)
	svc := newTestService(t, mock)

	result, err := svc.Synthesize(context.Background(), &models.GenerationRequest{
		Type:       models.TypePersons,
		Attributes: []string{"firstName"},
		Mode:       models.ModeAnonymize,
		Method:     models.MethodLLM,
		Corpus:     []models.Record{{"firstName": "source-first"}},
	})
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Clara", result.Records[0].StringValue("firstName"))
}
