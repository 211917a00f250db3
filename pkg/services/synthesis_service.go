// Package services orchestrates synthesis passes: request validation,
// strategy-family selection, and metrics assembly. The service is stateless
// between calls; any retained previous result belongs to the caller.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/generator"
	"github.com/synthdata-io/synth-engine/pkg/llmgen"
	"github.com/synthdata-io/synth-engine/pkg/metrics"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

// SynthesisService runs one generation or anonymization pass end to end.
type SynthesisService interface {
	Synthesize(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error)
}

type synthesisService struct {
	generator *generator.Generator
	adapter   *llmgen.Adapter
	logger    *zap.Logger
}

// NewSynthesisService creates a new synthesis service.
func NewSynthesisService(gen *generator.Generator, adapter *llmgen.Adapter, logger *zap.Logger) SynthesisService {
	return &synthesisService{
		generator: gen,
		adapter:   adapter,
		logger:    logger.Named("synthesis"),
	}
}

var _ SynthesisService = (*synthesisService)(nil)

// Synthesize validates the request, dispatches to the configured strategy
// family, and folds timing/validity observations into the metrics summary.
// Configuration errors fail the whole request; per-record generation trouble
// is recovered inside the strategy implementations.
func (s *synthesisService) Synthesize(ctx context.Context, req *models.GenerationRequest) (*models.GenerationResult, error) {
	rt, err := models.ParseRecordType(string(req.Type))
	if err != nil {
		return nil, err
	}
	if len(req.Attributes) == 0 {
		return nil, apperrors.ErrEmptyAttributes
	}
	if req.Count < 0 {
		return nil, fmt.Errorf("record count must not be negative, got %d", req.Count)
	}

	method := req.Method
	if method == "" {
		method = models.MethodLibrary
	}
	if _, err := models.ParseMethod(string(method)); err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode = models.ModeGenerate
	}

	pool := corpus.Pool(req.Corpus)
	if mode == models.ModeAnonymize && pool.Empty() {
		return nil, apperrors.ErrMissingCorpus
	}

	requestID := uuid.New()
	s.logger.Info("synthesis pass started",
		zap.String("request_id", requestID.String()),
		zap.String("type", string(rt)),
		zap.String("mode", string(mode)),
		zap.String("method", string(method)),
		zap.Int("count", req.Count),
		zap.Int("corpus_size", len(pool)))

	start := time.Now()

	var (
		records  []models.Record
		attempts []time.Time
		validity []bool
		capped   bool
	)

	switch mode {
	case models.ModeGenerate:
		switch method {
		case models.MethodLibrary:
			if pool.Empty() {
				records, attempts = s.generator.Generate(rt, req.Attributes, req.Count)
			} else {
				records, attempts = s.generator.SynthesizeFromCorpus(rt, req.Attributes, pool, req.Count)
			}
		case models.MethodLLM:
			pass, err := s.adapter.Generate(ctx, rt, req.Attributes, req.Count)
			if err != nil {
				return nil, fmt.Errorf("generative pass: %w", err)
			}
			records, attempts, validity, capped = pass.Records, pass.Attempts, pass.Validity, pass.Capped
		}

	case models.ModeAnonymize:
		switch method {
		case models.MethodLibrary:
			records, attempts = s.generator.Anonymize(rt, req.Attributes, pool)
		case models.MethodLLM:
			pass, err := s.adapter.Anonymize(ctx, rt, req.Attributes, pool)
			if err != nil {
				return nil, fmt.Errorf("generative anonymization: %w", err)
			}
			records, attempts, validity, capped = pass.Records, pass.Attempts, pass.Validity, pass.Capped
		}

	default:
		return nil, fmt.Errorf("invalid mode %q", mode)
	}

	if records == nil {
		records = []models.Record{}
	}

	m := metrics.Summarize(start, time.Now(), len(records), attempts, validity)
	m.Capped = capped

	s.logger.Info("synthesis pass finished",
		zap.String("request_id", requestID.String()),
		zap.Int("records", len(records)),
		zap.Float64("generation_time", m.GenerationTime),
		zap.Bool("capped", m.Capped))

	return &models.GenerationResult{Records: records, Metrics: m}, nil
}
