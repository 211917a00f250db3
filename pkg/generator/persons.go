package generator

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Probability of appending the numeric suffix to a username / email.
	userNameSuffixProb = 0.7
	emailSuffixProb    = 0.9

	// Probability of handing out the platform's infamous default password.
	weakPasswordProb = 0.1
	weakPassword     = "12345678"
)

var (
	birthDateMin = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	birthDateMax = time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC)

	personBadgeIssuedMin = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	personBadgeIssuedMax = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
)

// ensureNames resolves the first/last name dependencies of the composite
// person attributes.
func (g *Generator) ensureNames(st *state) {
	if st.firstName == "" {
		st.firstName = g.fake.FirstName()
	}
	if st.lastName == "" {
		st.lastName = g.fake.LastName()
	}
}

// ensureUserNum lazily fixes the numeric suffix shared by userName and email
// within one record.
func (g *Generator) ensureUserNum(st *state) {
	if st.userNum == 0 {
		st.userNum = g.fake.IntBetween(1, 9999)
	}
}

// resolvePersonComposite builds userName and email from the record's name
// state plus a numeric suffix shared between the two.
func (g *Generator) resolvePersonComposite(st *state, attr string) any {
	g.ensureNames(st)
	g.ensureUserNum(st)

	switch attr {
	case "userName":
		suffix := ""
		if g.fake.Chance(userNameSuffixProb) {
			suffix = fmt.Sprintf("%d", st.userNum)
		}
		return strings.ToLower(st.firstName) + strings.ToLower(st.lastName) + suffix

	case "email":
		suffix := ""
		if g.fake.Chance(emailSuffixProb) {
			suffix = fmt.Sprintf("%d", st.userNum)
		}
		domain := g.fake.Choice(g.vocab.EmailDomains)
		return fmt.Sprintf("%s.%s%s@%s",
			strings.ToLower(st.firstName), strings.ToLower(st.lastName), suffix, domain)
	}

	return g.fake.Word()
}

func (g *Generator) resolvePersonAtomic(st *state, attr string) any {
	switch attr {
	case "firstName":
		if st.firstName == "" {
			st.firstName = g.fake.FirstName()
		}
		return st.firstName

	case "lastName":
		if st.lastName == "" {
			st.lastName = g.fake.LastName()
		}
		return st.lastName

	case "password":
		if g.fake.Chance(weakPasswordProb) {
			return weakPassword
		}
		return g.fake.Password()

	case "birthDate":
		return g.fake.DateBetween(birthDateMin, birthDateMax).Format(dateLayout)

	case "badgeName":
		return g.fake.Word()

	case "badgeDescription":
		return g.fake.Text()

	case "badgeIssuedOn":
		return g.fake.DateBetween(personBadgeIssuedMin, personBadgeIssuedMax).Format(dateLayout)

	case "address":
		return g.fake.Address()

	case "phone_number":
		return g.fake.Phone()

	case "company":
		return g.fake.Company()

	case "job":
		return g.fake.Job()
	}

	return g.fake.Word()
}
