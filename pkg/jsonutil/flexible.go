// Package jsonutil holds small JSON coercion helpers shared by the corpus and
// extraction layers.
package jsonutil

import (
	"encoding/json"
	"math"
	"strconv"
)

// CoerceString renders a raw JSON value as the plain string the text-model
// trainer consumes. Uploaded corpora mix string, number and boolean values
// for the same attribute (durations as 6 or "6", coordinates as floats or
// strings); they all train the same way. Null and empty input coerce to "";
// structured values keep their raw text.
func CoerceString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', -1, 64)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}

	return string(raw)
}
