package generator

import (
	"time"
)

var (
	goalDescriptionMin = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	goalDescriptionMax = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
)

func (g *Generator) resolveGoalChoice(attr string) any {
	switch attr {
	case "type":
		return g.fake.Choice(g.vocab.GoalTypes)

	case "level":
		return g.fake.Choice(g.vocab.GoalLevels)
	}

	return g.fake.Word()
}

func (g *Generator) resolveGoalAtomic(attr string) any {
	if attr == "description" {
		// The upstream data set describes goals by their target date.
		return g.fake.DateBetween(goalDescriptionMin, goalDescriptionMax).Format(dateLayout)
	}
	return g.fake.Word()
}
