// Package prompts holds the fixed natural-language templates that drive the
// generative-model adapter. Generation templates embed the target schema
// (attribute names and semantic descriptions); anonymization templates embed
// only the selected attribute names.
package prompts

import (
	"fmt"
	"strings"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// SystemMessage frames every generation request.
const SystemMessage = "You generate realistic test data for a volunteering platform. " +
	"Respond with exactly one JSON object and nothing else."

// attributeSchema describes one attribute inside a generation template.
type attributeSchema struct {
	name        string
	description string
}

var generationSchemas = map[models.RecordType][]attributeSchema{
	models.TypePersons: {
		{"userName", "Username for a volunteering platform"},
		{"password", "Password a person might choose"},
		{"email", "Email address, preferably from an Austrian domain"},
		{"firstName", "First name, reasonable for Austrian names"},
		{"lastName", "Last name, reasonable for Austrian names"},
		{"birthDate", "Birth date in YYYY-MM-DD format"},
	},
	models.TypeBadges: {
		{"badgeName", "The name of the badge"},
		{"badgeDescription", "The description of a badge"},
		{"badgeIssuedOn", "The date of the badge being issued, YYYY-MM-DD"},
	},
	models.TypeActivities: {
		{"title", "Title of the volunteering activity"},
		{"description", "Description of the activity"},
		{"startDate", "Start date-time, YYYY-MM-DD HH:MM:SS"},
		{"endDate", "End date-time after the start, YYYY-MM-DD HH:MM:SS"},
		{"geoinfo", "Object with name, latitude and longitude as strings"},
		{"duration", "Duration in hours"},
		{"purpose", "Purpose of the activity"},
		{"role", "Role of the volunteer"},
		{"rank", "Rank of the volunteer"},
		{"phase", "Phase of the activity"},
		{"unit", "Organisational unit"},
		{"level", "Level of the activity"},
		{"taskType", "Array of task type strings"},
		{"bereich", "Area the activity belongs to"},
	},
	models.TypeOrganisations: {
		{"organisationName", "Name of the organization"},
		{"abbreviation", "Abbreviated name"},
		{"orgDescription", "Description of the organization"},
		{"orgWebsite", "Website URL, must start with https://"},
		{"orgImage", "Image/Logo URL, must start with https://"},
		{"orgTags", "Comma-separated tags describing activities"},
		{"orgLocation", "Location"},
	},
	models.TypeGoals: {
		{"type", "The type of the goal"},
		{"level", "The level of the goal"},
		{"description", "A description of the goal"},
	},
}

// Generation renders the fixed template for fabricating one record of the
// given type.
func Generation(rt models.RecordType) string {
	schema := generationSchemas[rt]

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a JSON object for a volunteering platform %s record with:\n", rt)
	for _, attr := range schema {
		fmt.Fprintf(&b, "%q: (string) %s,\n", attr.name, attr.description)
	}
	b.WriteString("JSON object:")
	return b.String()
}

// Anonymization renders the template for replacing the selected attributes of
// an existing record. Only attribute names are embedded, never source values.
func Anonymization(attributes []string) string {
	return fmt.Sprintf("Generate new values for these attributes: %s.\n"+
		"Ensure the output is a valid JSON object with only these attributes.\n"+
		"JSON object:", strings.Join(attributes, ", "))
}
