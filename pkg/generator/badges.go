package generator

import (
	"time"
)

var (
	badgeIssuedMin = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	badgeIssuedMax = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
)

// ensureBadge picks the badge name once per record so name and description
// stay consistent.
func (g *Generator) ensureBadge(st *state) {
	if st.badgeName == "" {
		st.badgeName = g.fake.Choice(g.vocab.BadgeNames)
	}
}

func (g *Generator) resolveBadgeChoice(st *state, attr string) any {
	g.ensureBadge(st)

	switch attr {
	case "badgeName":
		return st.badgeName

	case "badgeDescription":
		return st.badgeName + " Abzeichen"
	}

	return g.fake.Word()
}

func (g *Generator) resolveBadgeAtomic(attr string) any {
	if attr == "badgeIssuedOn" {
		return g.fake.DateBetween(badgeIssuedMin, badgeIssuedMax).Format(dateLayout)
	}
	return g.fake.Word()
}
