package reason

import (
	"context"

	"github.com/nyayalegal/nyaya/internal/models"
)

// DemoReasoner serves canned per-topic analyses so the server can run
// without a reasoning-service API key. Retrieval still happens for real;
// only the final reasoning step is stubbed.
type DemoReasoner struct{}

var demoAnalyses = map[models.Topic]models.Analysis{
	models.TopicRTI: {
		IntentDetected:        models.TopicRTI,
		SimplifiedExplanation: "You can ask any public authority for information under the Right to Information Act, 2005. File a written application with a Rs 10 fee; the authority must reply within 30 days.",
		RelevantActs:          []string{"Right to Information Act, 2005 — Section 6(1)", "Right to Information Act, 2005 — Section 7(1)"},
		ImmediateActionSteps: []string{
			"Identify the public authority that holds the information.",
			"File your application on rtionline.gov.in or by post with the Rs 10 fee.",
			"Keep the registration number; a reply is due within 30 days.",
		},
		ExtractedUserIssue: "Citizen seeking information from a public authority.",
		FollowUpQuestion:   "Which government department holds the information you need?",
	},
	models.TopicDomesticViolence: {
		IntentDetected:        models.TopicDomesticViolence,
		SimplifiedExplanation: "The Protection of Women from Domestic Violence Act, 2005 covers physical, emotional, sexual, verbal and economic abuse. You can approach a Protection Officer or file directly before a Magistrate.",
		RelevantActs:          []string{"Protection of Women from Domestic Violence Act, 2005", "Indian Penal Code — Section 498A"},
		ImmediateActionSteps: []string{
			"If you are in immediate danger, call 100 or the women's helpline 181.",
			"Contact the Protection Officer of your district or the nearest police station.",
			"A Domestic Incident Report can be filed with the Magistrate for protection orders.",
		},
		ExtractedUserIssue: "Person facing domestic violence seeking protection.",
		FollowUpQuestion:   "Are you currently in a safe place?",
	},
	models.TopicDivorce: {
		IntentDetected:        models.TopicDivorce,
		SimplifiedExplanation: "Divorce by mutual consent under Section 13B of the Hindu Marriage Act requires one year of separation and two motions before the family court, with a 6 to 18 month gap between them.",
		RelevantActs:          []string{"Hindu Marriage Act, 1955 — Section 13B", "Special Marriage Act, 1954"},
		ImmediateActionSteps: []string{
			"Consult a family-court lawyer or the district legal services authority for free legal aid.",
			"Gather your marriage certificate and proof of separation.",
			"File the first motion petition jointly in the family court of your district.",
		},
		ExtractedUserIssue: "Spouse exploring divorce options.",
		FollowUpQuestion:   "Do both spouses agree to the divorce?",
	},
}

func (DemoReasoner) Analyze(_ context.Context, query string, fused models.FusedContext) (*models.Analysis, error) {
	analysis, ok := demoAnalyses[fused.Topic]
	if !ok {
		analysis = demoAnalyses[models.TopicRTI]
	}
	analysis.ExtractedUserIssue = query
	analysis.ContextSource = fused.ContextSource
	analysis.SourcesUsed = fused.SourcesUsed
	return &analysis, nil
}

func (DemoReasoner) ExtractForm(_ context.Context, _ string, _ []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func (DemoReasoner) Close() error { return nil }
