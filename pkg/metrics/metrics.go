// Package metrics aggregates per-record and per-attempt observations of a
// synthesis pass into the summary handed to the presentation layer.
package metrics

import (
	"math"
	"time"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// Summarize folds the pass's raw observations into a Metrics value.
// Offsets are per-record or per-attempt completion timestamps; each is
// reported relative to start, rounded to 2 decimal places, behind a leading 0
// sentinel for the pass's own start. The validity sequence is passed through
// unchanged, nil when empty.
func Summarize(start, end time.Time, recordCount int, offsets []time.Time, validity []bool) *models.Metrics {
	m := &models.Metrics{
		GenerationTime: round(end.Sub(start).Seconds(), 4),
	}

	if recordCount > 0 {
		m.AvgTimePerRecord = m.GenerationTime / float64(recordCount)
	}

	m.ResultsTimes = make([]float64, 0, len(offsets)+1)
	m.ResultsTimes = append(m.ResultsTimes, 0)
	for _, t := range offsets {
		m.ResultsTimes = append(m.ResultsTimes, round(t.Sub(start).Seconds(), 2))
	}

	if len(validity) > 0 {
		m.ResultValidity = validity
	}

	return m
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
