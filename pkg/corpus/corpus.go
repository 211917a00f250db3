// Package corpus parses and exposes caller-uploaded sample records. The
// corpus is read-only reference data: generation passes sample from it and
// train per-attribute text models on it, but never mutate it.
package corpus

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
	"github.com/synthdata-io/synth-engine/pkg/jsonutil"
	"github.com/synthdata-io/synth-engine/pkg/models"
)

// Parse decodes an uploaded corpus. Line breaks inside string values are
// normalized to single spaces before structural parsing. Accepts a JSON array
// of records, tolerating one extra wrapping array level as some exports
// produce. Malformed input fails with ErrMalformedCorpus; there is no partial
// result.
func Parse(raw []byte) ([]models.Record, error) {
	text := strings.ReplaceAll(string(raw), "\n", " ")
	text = strings.ReplaceAll(text, "\r", "")

	var top []json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedCorpus, err)
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("%w: empty record list", apperrors.ErrMalformedCorpus)
	}

	// Unwrap [[{...}, ...]] to [{...}, ...].
	var inner []json.RawMessage
	if err := json.Unmarshal(top[0], &inner); err == nil {
		top = inner
	}

	records := make([]models.Record, 0, len(top))
	for i, msg := range top {
		var rec models.Record
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %d is not an object: %v", apperrors.ErrMalformedCorpus, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Pool is a read-only view over parsed corpus records.
type Pool []models.Record

// Sample returns a uniformly chosen record. Callers must check Empty first.
func (p Pool) Sample(rng *rand.Rand) models.Record {
	return p[rng.Intn(len(p))]
}

// Empty reports whether the pool has no records.
func (p Pool) Empty() bool {
	return len(p) == 0
}

// Attributes returns the sorted union of attribute names across the pool.
func (p Pool) Attributes() []string {
	seen := make(map[string]struct{})
	for _, rec := range p {
		for k := range rec {
			seen[k] = struct{}{}
		}
	}
	attrs := make([]string, 0, len(seen))
	for k := range seen {
		attrs = append(attrs, k)
	}
	sort.Strings(attrs)
	return attrs
}

// Values collects the named attribute's values across the pool, rendered as
// strings. Records without the attribute are skipped.
func (p Pool) Values(attr string) []string {
	var out []string
	for _, rec := range p {
		v, ok := rec[attr]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			out = append(out, s)
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			continue
		}
		out = append(out, jsonutil.CoerceString(raw))
	}
	return out
}
