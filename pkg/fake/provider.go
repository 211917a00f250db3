// Package fake wraps gofakeit behind the semantic value categories the
// attribute rule tables dispatch on. Stateless per call; a non-zero seed makes
// the provider deterministic for tests.
package fake

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Provider supplies atomic random values on demand.
type Provider struct {
	f *gofakeit.Faker
}

// NewProvider creates a provider. A seed of 0 uses a random source.
func NewProvider(seed uint64) *Provider {
	return &Provider{f: gofakeit.New(seed)}
}

func (p *Provider) FirstName() string { return p.f.FirstName() }
func (p *Provider) LastName() string  { return p.f.LastName() }
func (p *Provider) Word() string      { return p.f.Word() }
func (p *Provider) City() string      { return p.f.City() }
func (p *Provider) URL() string       { return p.f.URL() }
func (p *Provider) Phone() string     { return p.f.Phone() }
func (p *Provider) Company() string   { return p.f.Company() }
func (p *Provider) Job() string       { return p.f.JobTitle() }

// Title produces a short catch-phrase suitable for activity titles.
func (p *Provider) Title() string { return p.f.Phrase() }

// Text produces a sentence of descriptive filler text.
func (p *Provider) Text() string { return p.f.Sentence(8) }

// ShortText produces a compact description.
func (p *Provider) ShortText() string { return p.f.Sentence(3) }

// Words produces n words joined by ", ".
func (p *Provider) Words(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = p.f.Word()
	}
	return strings.Join(words, ", ")
}

// Address produces a full postal address on a single line.
func (p *Provider) Address() string {
	a := p.f.Address()
	return a.Address
}

// ImageURL produces an image link.
func (p *Provider) ImageURL() string { return p.f.ImageURL(640, 480) }

// Password produces a random 12-character password with mixed case and digits.
func (p *Provider) Password() string {
	return p.f.Password(true, true, true, false, false, 12)
}

// DateBetween samples a date uniformly within [start, end].
func (p *Provider) DateBetween(start, end time.Time) time.Time {
	return p.f.DateRange(start, end)
}

// IntBetween samples an integer uniformly within [min, max].
func (p *Provider) IntBetween(min, max int) int { return p.f.Number(min, max) }

// Choice picks one option uniformly.
func (p *Provider) Choice(options []string) string { return p.f.RandomString(options) }

// Chance returns true with probability prob.
func (p *Provider) Chance(prob float64) bool {
	return p.f.Float64Range(0, 1) < prob
}

// Latitude returns a latitude rendered as a string, matching the corpus
// convention of string-typed coordinates.
func (p *Provider) Latitude() string {
	return fmt.Sprintf("%.6f", p.f.Latitude())
}

// Longitude returns a longitude rendered as a string.
func (p *Provider) Longitude() string {
	return fmt.Sprintf("%.6f", p.f.Longitude())
}
