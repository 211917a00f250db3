// Package llmgen drives the external text-generation capability through the
// prompt/generate/extract/validate loop. The loop's only success state is an
// accepted record; the historic retry-until-valid behavior is kept but bounded
// by an explicit maximum-attempt budget, falling back to atomic fake values
// on exhaustion so a misbehaving model cannot hang a request.
package llmgen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/extract"
	"github.com/synthdata-io/synth-engine/pkg/llm"
	"github.com/synthdata-io/synth-engine/pkg/logging"
	"github.com/synthdata-io/synth-engine/pkg/models"
	"github.com/synthdata-io/synth-engine/pkg/prompts"
	"github.com/synthdata-io/synth-engine/pkg/retry"
)

// FallbackFunc fabricates a record from atomic fake values when the attempt
// budget for a desired record is exhausted.
type FallbackFunc func(rt models.RecordType, attrs []string) models.Record

// PassResult carries one pass's records plus the raw timing/validity
// observations the metrics aggregator consumes.
type PassResult struct {
	Records  []models.Record
	Attempts []time.Time
	Validity []bool
	Capped   bool
}

// Adapter wraps a TextGenerator with prompting, extraction, validation and
// bounded retries.
type Adapter struct {
	gen         llm.TextGenerator
	retryCfg    *retry.Config
	maxAttempts int
	temperature float64
	fallback    FallbackFunc
	logger      *zap.Logger
}

// New creates an adapter. maxAttempts bounds the validate/retry loop per
// desired record and must be at least 1.
func New(gen llm.TextGenerator, maxAttempts int, temperature float64, fallback FallbackFunc, logger *zap.Logger) *Adapter {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Adapter{
		gen:         gen,
		retryCfg:    retry.DefaultConfig(),
		maxAttempts: maxAttempts,
		temperature: temperature,
		fallback:    fallback,
		logger:      logger.Named("llmgen"),
	}
}

// generate invokes the model once, retrying transport-level transient
// failures. The returned error is permanent when non-nil.
func (a *Adapter) generate(ctx context.Context, prompt string) (string, error) {
	var out string
	err := retry.DoIfRetryable(ctx, a.retryCfg, func() error {
		var genErr error
		out, genErr = a.gen.Generate(ctx, prompt, prompts.SystemMessage, a.temperature)
		return genErr
	})
	return out, err
}

// Generate fabricates count records of the given type. Invalid attempts are
// recorded and retried up to the attempt budget; an exhausted budget yields a
// fallback record and sets Capped.
func (a *Adapter) Generate(ctx context.Context, rt models.RecordType, attrs []string, count int) (*PassResult, error) {
	res := &PassResult{}
	prompt := prompts.Generation(rt)
	extractor := extract.ForType(rt)

	for i := 0; i < count; i++ {
		accepted := false

		for attempt := 1; attempt <= a.maxAttempts; attempt++ {
			out, err := a.generate(ctx, prompt)
			res.Attempts = append(res.Attempts, time.Now())

			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if !retry.IsRetryable(err) {
					// Auth/config-class failures cannot heal within a pass.
					return nil, err
				}
				res.Validity = append(res.Validity, false)
				continue
			}

			rec, ok := extractor.Extract(out)
			if !ok || !extract.Validate(rt, rec) {
				a.logger.Debug("rejected attempt",
					zap.String("type", string(rt)),
					zap.Int("attempt", attempt),
					zap.String("output", logging.TruncateOutput(logging.SanitizeCorpusValue(out))))
				res.Validity = append(res.Validity, false)
				continue
			}

			res.Validity = append(res.Validity, true)
			res.Records = append(res.Records, filterAttributes(rec, attrs))
			accepted = true
			break
		}

		if !accepted {
			a.logger.Warn("attempt budget exhausted, falling back to fake values",
				zap.String("type", string(rt)),
				zap.Int("max_attempts", a.maxAttempts))
			res.Capped = true
			res.Records = append(res.Records, a.fallback(rt, attrs))
		}
	}

	return res, nil
}

// Anonymize overlays model-generated replacements onto each corpus record.
// A candidate is accepted only when it differs from the original value;
// otherwise the attribute is emptied rather than retried, so the model can
// never echo identifying input back into the output.
func (a *Adapter) Anonymize(ctx context.Context, rt models.RecordType, attrs []string, pool corpus.Pool) (*PassResult, error) {
	res := &PassResult{}
	prompt := prompts.Anonymization(attrs)

	for _, src := range pool {
		out, err := a.generate(ctx, prompt)
		res.Attempts = append(res.Attempts, time.Now())

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if !retry.IsRetryable(err) {
				return nil, err
			}
			// Transient failure for this record: every requested attribute
			// present on the source is blanked.
			out = ""
		}

		rec := src.Clone()
		for _, attr := range attrs {
			if !src.Has(attr) {
				continue
			}
			candidate, ok := extract.Field(out, attr)
			if !ok || candidate == "" || candidate == src.StringValue(attr) {
				rec[attr] = ""
				continue
			}
			rec[attr] = candidate
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// filterAttributes restricts an extracted record to the requested attribute
// set so intermediate fields never leak into the output.
func filterAttributes(rec models.Record, attrs []string) models.Record {
	out := make(models.Record, len(attrs))
	for _, attr := range attrs {
		if v, ok := rec[attr]; ok {
			out[attr] = v
			continue
		}
		out[attr] = ""
	}
	return out
}
