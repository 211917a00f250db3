package generator

import (
	"fmt"
	"time"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// sampleField copies the named field from a freshly sampled reference record,
// reporting whether the sample carried it.
func (g *Generator) sampleField(attr string) (any, bool) {
	if g.seed.Empty() {
		return nil, false
	}
	rec := g.seed.Sample(g.rng)
	v, ok := rec[attr]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// resolveTemporal derives a date from a sibling date resolved earlier in the
// same record. Only activities declare one: endDate anchored on startDate.
func (g *Generator) resolveTemporal(st *state, attr string, base models.Record, fresh bool) any {
	if attr != "endDate" {
		return g.fake.Word()
	}

	start, ok := st.startDate, st.hasStart
	if !ok {
		// The sibling was not part of this pass; anchor on whatever start
		// the record already carries.
		if t, err := time.Parse(dateTimeLayout, base.StringValue("startDate")); err == nil {
			start, ok = t, true
		}
	}
	if ok {
		return g.fake.DateBetween(start, time.Now()).Format(dateTimeLayout)
	}
	if !fresh {
		if v, sampled := g.sampleField("endDate"); sampled {
			return v
		}
	}
	return g.fake.DateBetween(time.Now().AddDate(-5, 0, 0), time.Now()).Format(dateTimeLayout)
}

// resolveCorpusCopy fills one activity attribute. Scratch generation samples
// the bundled reference pool field-by-field and falls back to atomic fakes;
// anonymization (fresh=true) always draws fresh values.
func (g *Generator) resolveCorpusCopy(st *state, attr string, fresh bool) any {
	switch attr {
	case "title":
		if !fresh {
			if v, ok := g.sampleField("title"); ok {
				return v
			}
		}
		return g.fake.Title()

	case "description":
		if !fresh {
			if v, ok := g.sampleField("description"); ok {
				return v
			}
			return g.fake.Text()
		}
		return g.fake.ShortText()

	case "startDate":
		if !fresh {
			if v, ok := g.sampleField("startDate"); ok {
				if t, err := time.Parse(dateTimeLayout, fmt.Sprintf("%v", v)); err == nil {
					st.startDate = t
					st.hasStart = true
				}
				return v
			}
		}
		span := 10
		if fresh {
			span = 15
		}
		t := g.fake.DateBetween(time.Now().AddDate(-span, 0, 0), time.Now())
		st.startDate = t
		st.hasStart = true
		return t.Format(dateTimeLayout)

	case "geoinfo":
		if fresh {
			return map[string]any{
				"name":      g.fake.City(),
				"latitude":  g.fake.Latitude(),
				"longitude": g.fake.Longitude(),
			}
		}
		return map[string]any{
			"name":      g.sampleGeoField("name", g.fake.City),
			"latitude":  g.sampleGeoField("latitude", g.fake.Latitude),
			"longitude": g.sampleGeoField("longitude", g.fake.Longitude),
		}

	case "duration":
		if fresh {
			return fmt.Sprintf("%d.0", g.fake.IntBetween(1, 8))
		}
		if v, ok := g.sampleField("duration"); ok {
			return v
		}
		return fmt.Sprintf("%d", g.fake.IntBetween(1, 8))

	case "taskType":
		if !fresh {
			if v, ok := g.sampleField("taskType"); ok {
				if tasks := asStringSlice(v); len(tasks) > 0 {
					return g.fake.Choice(tasks)
				}
			}
		}
		return g.fake.Word()

	case "purpose", "role", "rank", "phase", "unit", "level", "bereich":
		if !fresh {
			if v, ok := g.sampleField(attr); ok {
				return v
			}
		}
		return g.fake.Word()
	}

	return g.fake.Word()
}

// sampleGeoField copies one coordinate component from an independently
// sampled reference record, mirroring how the upstream generator mixes
// locations.
func (g *Generator) sampleGeoField(field string, fallback func() string) string {
	if v, ok := g.sampleField("geoinfo"); ok {
		if geo, ok := v.(map[string]any); ok {
			if s, ok := geo[field].(string); ok && s != "" {
				return s
			}
		}
	}
	return fallback()
}

// asStringSlice coerces JSON-decoded list values into a string slice.
func asStringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
