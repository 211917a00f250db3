package models

// Metrics summarizes one synthesis pass. A previously saved Metrics value may
// be held by the caller for side-by-side comparison; the engine never mutates
// a Metrics value after producing it.
type Metrics struct {
	// GenerationTime is total wall time for the whole request, seconds,
	// rounded to 4 decimal places.
	GenerationTime float64 `json:"generation_time"`

	// AvgTimePerRecord is GenerationTime / record count, 0 when the count is 0.
	AvgTimePerRecord float64 `json:"avg_time_per_record"`

	// ResultsTimes holds per-record (or per-attempt) offsets from the pass's
	// start, seconds rounded to 2 decimal places, with a leading 0 sentinel.
	ResultsTimes []float64 `json:"results_times"`

	// ResultValidity carries one flag per generation attempt, nil when the
	// strategy cannot produce invalid attempts.
	ResultValidity []bool `json:"result_validity,omitempty"`

	// Capped is set when the generative adapter exhausted its attempt budget
	// for at least one record and fell back to fake values.
	Capped bool `json:"capped,omitempty"`
}
