// Package generator implements the field generation dispatcher: per-type
// attribute rule tables, dependency-ordered resolution within a record, and
// the scratch, corpus-driven and anonymization passes built on them.
package generator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/fake"
	"github.com/synthdata-io/synth-engine/pkg/markov"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

//go:embed activities_seed.json
var activitiesSeedJSON []byte

// Generator dispatches attribute resolution for one record type at a time.
// It is stateless between passes; all per-record state lives in a state value
// discarded when the record completes.
type Generator struct {
	fake   *fake.Provider
	vocab  *Vocab
	seed   corpus.Pool
	rng    *rand.Rand
	logger *zap.Logger
}

// New creates a generator. A zero seed randomizes corpus sampling.
func New(provider *fake.Provider, seed uint64, logger *zap.Logger) (*Generator, error) {
	vocab, err := LoadVocab()
	if err != nil {
		return nil, err
	}

	var seedPool []models.Record
	if err := json.Unmarshal(activitiesSeedJSON, &seedPool); err != nil {
		return nil, fmt.Errorf("parse activities seed: %w", err)
	}

	src := rand.NewSource(time.Now().UnixNano())
	if seed != 0 {
		src = rand.NewSource(int64(seed))
	}

	return &Generator{
		fake:   provider,
		vocab:  vocab,
		seed:   corpus.Pool(seedPool),
		rng:    rand.New(src),
		logger: logger.Named("generator"),
	}, nil
}

// state holds values already assigned earlier in the same record that later
// attributes depend on. Scoped to one record.
type state struct {
	firstName string
	lastName  string
	userNum   int
	badgeName string
	orgName   string
	startDate time.Time
	hasStart  bool
}

// resolve dispatches one attribute through its declared strategy. fresh
// selects the anonymization variant where a strategy behaves differently
// (corpus-copy attributes draw fresh values instead of sampling the
// reference pool).
func (g *Generator) resolve(rt models.RecordType, st *state, attr string, base models.Record, fresh bool) any {
	switch StrategyFor(rt, attr) {
	case StrategyComposite:
		return g.resolveComposite(rt, st, attr)
	case StrategyConstrainedChoice:
		return g.resolveConstrained(rt, st, attr, base)
	case StrategyTemporalDerived:
		return g.resolveTemporal(st, attr, base, fresh)
	case StrategyCorpusCopy:
		return g.resolveCorpusCopy(st, attr, fresh)
	}
	return g.resolveAtomic(rt, st, attr)
}

func (g *Generator) resolveComposite(rt models.RecordType, st *state, attr string) any {
	if rt == models.TypePersons {
		return g.resolvePersonComposite(st, attr)
	}
	return g.fake.Word()
}

func (g *Generator) resolveConstrained(rt models.RecordType, st *state, attr string, base models.Record) any {
	switch rt {
	case models.TypeBadges:
		return g.resolveBadgeChoice(st, attr)
	case models.TypeOrganisations:
		return g.resolveOrganisationChoice(st, attr, base)
	case models.TypeGoals:
		return g.resolveGoalChoice(attr)
	}
	return g.fake.Word()
}

func (g *Generator) resolveAtomic(rt models.RecordType, st *state, attr string) any {
	switch rt {
	case models.TypePersons:
		return g.resolvePersonAtomic(st, attr)
	case models.TypeBadges:
		return g.resolveBadgeAtomic(attr)
	case models.TypeOrganisations:
		return g.resolveOrganisationAtomic(attr)
	case models.TypeGoals:
		return g.resolveGoalAtomic(attr)
	}
	return g.fake.Word()
}

// ScratchRecord fabricates a single record containing exactly the requested
// attributes, resolving them in the type's dependency order.
func (g *Generator) ScratchRecord(rt models.RecordType, attrs []string) models.Record {
	st := &state{}
	rec := models.Record{}
	for _, attr := range orderAttributes(rt, attrs) {
		rec[attr] = g.resolve(rt, st, attr, rec, false)
	}
	return rec
}

// Generate fabricates count records from scratch. Returns the records and a
// completion timestamp per record.
func (g *Generator) Generate(rt models.RecordType, attrs []string, count int) ([]models.Record, []time.Time) {
	records := make([]models.Record, 0, count)
	times := make([]time.Time, 0, count)

	for i := 0; i < count; i++ {
		records = append(records, g.ScratchRecord(rt, attrs))
		times = append(times, time.Now())
	}

	g.logger.Debug("scratch generation finished",
		zap.String("type", string(rt)),
		zap.Int("records", len(records)))
	return records, times
}

// SynthesizeFromCorpus assembles count new records, each built from a single
// sampled reference record: per attribute, a text model is trained on that
// one record's value and sampled, falling back to an atomic fake value. The
// type's discriminating key attribute is not reused across output records;
// when the pool cannot supply enough distinct keys the dedup set is reset
// rather than spinning forever.
func (g *Generator) SynthesizeFromCorpus(rt models.RecordType, attrs []string, pool corpus.Pool, count int) ([]models.Record, []time.Time) {
	records := make([]models.Record, 0, count)
	times := make([]time.Time, 0, count)
	if pool.Empty() {
		return records, times
	}

	key := keyAttribute[rt]
	selected := make(map[string]bool)
	ordered := orderAttributes(rt, attrs)

	tries := 0
	maxTries := count*10 + 50

	for len(records) < count {
		tries++
		if tries > maxTries {
			g.logger.Warn("corpus cannot satisfy key dedup, allowing reuse",
				zap.String("type", string(rt)),
				zap.String("key", key))
			selected = make(map[string]bool)
			tries = 0
		}

		src := pool.Sample(g.rng)
		keyVal := src.StringValue(key)
		if selected[keyVal] {
			continue
		}

		rec := models.Record{}
		for _, attr := range ordered {
			rec[attr] = g.corpusValue(src, attr)
		}

		records = append(records, rec)
		times = append(times, time.Now())
		selected[keyVal] = true
	}

	return records, times
}

// corpusValue samples the per-attribute text model trained on the single
// source record, falling back to an atomic fake value when training or
// sampling fails.
func (g *Generator) corpusValue(src models.Record, attr string) string {
	if model, ok := markov.Train([]models.Record{src}, attr); ok {
		if s, ok := model.Sample(); ok {
			return s
		}
	}
	return g.fake.Word()
}

// Anonymize overlays freshly drawn values onto each corpus record for the
// requested attributes. Attributes absent from a source record stay absent;
// unrequested attributes survive untouched.
func (g *Generator) Anonymize(rt models.RecordType, attrs []string, pool corpus.Pool) ([]models.Record, []time.Time) {
	records := make([]models.Record, 0, len(pool))
	times := make([]time.Time, 0, len(pool))
	ordered := orderAttributes(rt, attrs)

	for _, src := range pool {
		st := &state{}
		out := src.Clone()
		for _, attr := range ordered {
			if !src.Has(attr) {
				continue
			}
			out[attr] = g.resolve(rt, st, attr, out, true)
		}
		records = append(records, out)
		times = append(times, time.Now())
	}

	return records, times
}
