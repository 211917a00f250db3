package generator

import (
	"github.com/synthdata-io/synth-engine/pkg/models"
)

// ensureOrganisation picks the organisation name once per record so the
// abbreviation propagates deterministically instead of being randomized
// independently.
func (g *Generator) ensureOrganisation(st *state, base models.Record) {
	if st.orgName != "" {
		return
	}
	if name := base.StringValue("organisationName"); name != "" {
		st.orgName = name
		return
	}
	st.orgName = g.fake.Choice(g.vocab.OrganisationNames())
}

func (g *Generator) resolveOrganisationChoice(st *state, attr string, base models.Record) any {
	switch attr {
	case "organisationName":
		// Always drawn fresh; the base record's name must not survive an
		// anonymization pass.
		if st.orgName == "" {
			st.orgName = g.fake.Choice(g.vocab.OrganisationNames())
		}
		return st.orgName

	case "abbreviation":
		g.ensureOrganisation(st, base)
		return g.vocab.Abbreviation(st.orgName)
	}

	return g.fake.Word()
}

func (g *Generator) resolveOrganisationAtomic(attr string) any {
	switch attr {
	case "orgDescription":
		return g.fake.Text()

	case "orgWebsite":
		return g.fake.URL()

	case "orgImage":
		return g.fake.ImageURL()

	case "orgTags":
		return g.fake.Words(3)

	case "orgLocation":
		return g.fake.City()
	}

	return g.fake.Word()
}
