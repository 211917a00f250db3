package extract

import (
	"regexp"
	"strings"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// activityFieldPatterns pull individual activity fields out of free text.
// Activities are the one type whose output shape is too wide and too nested
// for a single fixed pattern, so fields are matched independently and missing
// ones default to empty.
var activityFieldPatterns = map[string]*regexp.Regexp{
	"title":       regexp.MustCompile(`"title"\s*:\s*"([^"]*)"`),
	"description": regexp.MustCompile(`"description"\s*:\s*"([^"]*)"`),
	"startDate":   regexp.MustCompile(`"startDate"\s*:\s*"([^"]*)"`),
	"endDate":     regexp.MustCompile(`"endDate"\s*:\s*"([^"]*)"`),
	"duration":    regexp.MustCompile(`"duration"\s*:\s*"([^"]*)"`),
	"purpose":     regexp.MustCompile(`"purpose"\s*:\s*"([^"]*)"`),
	"role":        regexp.MustCompile(`"role"\s*:\s*"([^"]*)"`),
	"rank":        regexp.MustCompile(`"rank"\s*:\s*"([^"]*)"`),
	"phase":       regexp.MustCompile(`"phase"\s*:\s*"([^"]*)"`),
	"unit":        regexp.MustCompile(`"unit"\s*:\s*"([^"]*)"`),
	"level":       regexp.MustCompile(`"level"\s*:\s*"([^"]*)"`),
	"bereich":     regexp.MustCompile(`"bereich"\s*:\s*"([^"]*)"`),
}

var (
	geoNamePattern      = regexp.MustCompile(`"geoinfo"\s*:\s*\{[^}]*"name"\s*:\s*"([^"]*)"`)
	geoLatitudePattern  = regexp.MustCompile(`"geoinfo"\s*:\s*\{[^}]*"latitude"\s*:\s*"([^"]*)"`)
	geoLongitudePattern = regexp.MustCompile(`"geoinfo"\s*:\s*\{[^}]*"longitude"\s*:\s*"([^"]*)"`)
	taskTypePattern     = regexp.MustCompile(`"taskType"\s*:\s*\[([^\]]*)\]`)
)

type activitiesExtractor struct{}

func (e *activitiesExtractor) Extract(text string) (models.Record, bool) {
	cleaned := normalize(text)

	rec := models.Record{}
	for attr, pattern := range activityFieldPatterns {
		if match := pattern.FindStringSubmatch(cleaned); match != nil {
			rec[attr] = match[1]
		}
	}

	geo := models.Record{}
	if match := geoNamePattern.FindStringSubmatch(cleaned); match != nil {
		geo["name"] = match[1]
	}
	if match := geoLatitudePattern.FindStringSubmatch(cleaned); match != nil {
		geo["latitude"] = match[1]
	}
	if match := geoLongitudePattern.FindStringSubmatch(cleaned); match != nil {
		geo["longitude"] = match[1]
	}
	if len(geo) > 0 {
		rec["geoinfo"] = map[string]any(geo)
	}

	if match := taskTypePattern.FindStringSubmatch(cleaned); match != nil {
		var tasks []string
		for _, item := range strings.Split(match[1], ",") {
			item = strings.Trim(strings.TrimSpace(item), `"`)
			if item != "" {
				tasks = append(tasks, item)
			}
		}
		rec["taskType"] = tasks
	}

	if len(rec) == 0 {
		return nil, false
	}
	return rec, true
}
