// Package forms defines the legal document schemas the assistant can help
// fill: for each topic, the fields the final draft needs and the plain
// question to ask a user for each missing field.
package forms

import (
	"fmt"

	"github.com/nyayalegal/nyaya/internal/models"
)

// Field is one slot in a legal form.
type Field struct {
	Name     string `json:"name"`
	Question string `json:"question"`
	Required bool   `json:"required"`
}

// Schema describes one fillable legal document.
type Schema struct {
	Topic  models.Topic `json:"topic"`
	Title  string       `json:"title"`
	Fields []Field      `json:"fields"`
}

// FieldNames returns the schema's field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Missing returns the required fields that values does not cover, in
// declaration order, paired with their questions.
func (s Schema) Missing(values map[string]string) []Field {
	var missing []Field
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		if v, ok := values[f.Name]; !ok || v == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Lookup returns the schema for topic.
func Lookup(topic models.Topic) (Schema, error) {
	schema, ok := schemas[topic]
	if !ok {
		return Schema{}, fmt.Errorf("no form defined for topic %q", topic)
	}
	return schema, nil
}

var schemas = map[models.Topic]Schema{
	models.TopicRTI: {
		Topic: models.TopicRTI,
		Title: "RTI Application (Section 6(1))",
		Fields: []Field{
			{Name: "applicant_name", Question: "What is your full name?", Required: true},
			{Name: "applicant_address", Question: "What is your postal address?", Required: true},
			{Name: "public_authority", Question: "Which government department or authority holds the information?", Required: true},
			{Name: "information_sought", Question: "What information do you want from them?", Required: true},
			{Name: "period_of_information", Question: "Which time period should the information cover?", Required: false},
			{Name: "bpl_status", Question: "Do you hold a Below Poverty Line card? (fee is waived if so)", Required: false},
		},
	},
	models.TopicDomesticViolence: {
		Topic: models.TopicDomesticViolence,
		Title: "Domestic Incident Report (Form I)",
		Fields: []Field{
			{Name: "aggrieved_name", Question: "What is your full name?", Required: true},
			{Name: "aggrieved_address", Question: "Where do you currently live?", Required: true},
			{Name: "respondent_name", Question: "What is the name of the person who harmed you?", Required: true},
			{Name: "relationship", Question: "What is your relationship to that person?", Required: true},
			{Name: "incident_details", Question: "Describe what happened, with dates if you can.", Required: true},
			{Name: "children_details", Question: "Do you have children living with you? Names and ages, if so.", Required: false},
			{Name: "reliefs_sought", Question: "What protection do you need (residence, money, custody, protection order)?", Required: false},
		},
	},
	models.TopicDivorce: {
		Topic: models.TopicDivorce,
		Title: "Mutual Consent Divorce Petition (Section 13B)",
		Fields: []Field{
			{Name: "petitioner_name", Question: "What is your full name?", Required: true},
			{Name: "spouse_name", Question: "What is your spouse's full name?", Required: true},
			{Name: "marriage_date", Question: "When were you married?", Required: true},
			{Name: "marriage_place", Question: "Where was the marriage solemnized?", Required: true},
			{Name: "separation_date", Question: "Since when have you been living separately?", Required: true},
			{Name: "children_details", Question: "Do you have children? Names and ages, if so.", Required: false},
			{Name: "maintenance_terms", Question: "Have you agreed on alimony or maintenance terms?", Required: false},
		},
	},
}
