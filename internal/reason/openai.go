package reason

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"github.com/nyayalegal/nyaya/internal/config"
	"github.com/nyayalegal/nyaya/internal/models"
)

const analyzeSystemPrompt = `You are a legal triage assistant for Indian law. You help citizens understand their legal situation in plain language. You are not a lawyer and you never give advice beyond general legal information.

Classify the user's issue into one of these intents: "RTI", "Domestic Violence", "Divorce". If the user describes immediate physical danger to themselves or others, set kill_switch_triggered to true and put emergency helpline guidance in immediate_action_steps.

Use ONLY the legal context provided. Respond with a JSON object with exactly these keys:
{
  "intent_detected": string,
  "kill_switch_triggered": boolean,
  "simplified_explanation": string,
  "relevant_acts": [string],
  "immediate_action_steps": [string],
  "extracted_user_issue": string,
  "follow_up_question": string
}`

const extractSystemPrompt = `You extract structured form fields from a conversation. Respond with a JSON object whose keys are exactly the requested field names. Omit any field the conversation does not answer. Never guess or invent values.`

// OpenAIReasoner calls an OpenAI-compatible chat completion endpoint
// (Groq by default) in JSON mode.
type OpenAIReasoner struct {
	llm         *openai.LLM
	temperature float64
	logger      *zap.Logger
}

// NewOpenAIReasoner builds a reasoner from cfg. The API key is required.
func NewOpenAIReasoner(cfg config.ReasonConfig, logger *zap.Logger) (*OpenAIReasoner, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("reasoning service API key not configured")
	}
	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("create reasoning client: %w", err)
	}
	return &OpenAIReasoner{llm: llm, temperature: cfg.Temperature, logger: logger}, nil
}

// analysisPayload is the model's half of the Analysis schema; provenance
// fields are injected afterwards.
type analysisPayload struct {
	IntentDetected        string   `json:"intent_detected"`
	KillSwitchTriggered   bool     `json:"kill_switch_triggered"`
	SimplifiedExplanation string   `json:"simplified_explanation"`
	RelevantActs          []string `json:"relevant_acts"`
	ImmediateActionSteps  []string `json:"immediate_action_steps"`
	ExtractedUserIssue    string   `json:"extracted_user_issue"`
	FollowUpQuestion      string   `json:"follow_up_question"`
}

// Analyze sends the fused context and query to the model and parses its
// JSON response.
func (r *OpenAIReasoner) Analyze(ctx context.Context, query string, fused models.FusedContext) (*models.Analysis, error) {
	userPrompt := fmt.Sprintf("LEGAL CONTEXT:\n%s\n\nUSER QUERY:\n%s", fused.Text, query)

	raw, err := r.complete(ctx, analyzeSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	analysis := &models.Analysis{
		IntentDetected:        models.ParseTopic(payload.IntentDetected),
		KillSwitchTriggered:   payload.KillSwitchTriggered,
		SimplifiedExplanation: payload.SimplifiedExplanation,
		RelevantActs:          payload.RelevantActs,
		ImmediateActionSteps:  payload.ImmediateActionSteps,
		ExtractedUserIssue:    payload.ExtractedUserIssue,
		FollowUpQuestion:      payload.FollowUpQuestion,
		ContextSource:         fused.ContextSource,
		SourcesUsed:           fused.SourcesUsed,
	}
	r.logger.Debug("analysis complete",
		zap.String("intent", string(analysis.IntentDetected)),
		zap.Bool("kill_switch", analysis.KillSwitchTriggered))
	return analysis, nil
}

// ExtractForm asks the model for the named field values found in conversation.
func (r *OpenAIReasoner) ExtractForm(ctx context.Context, conversation string, fields []string) (map[string]string, error) {
	userPrompt := fmt.Sprintf("FIELDS: %s\n\nCONVERSATION:\n%s", strings.Join(fields, ", "), conversation)

	raw, err := r.complete(ctx, extractSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}
	// Drop keys the caller never asked for.
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}
	for key, value := range values {
		if !allowed[key] || strings.TrimSpace(value) == "" {
			delete(values, key)
		}
	}
	return values, nil
}

func (r *OpenAIReasoner) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := r.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, system),
			llms.TextParts(schema.ChatMessageTypeHuman, user),
		},
		llms.WithJSONMode(),
		llms.WithTemperature(r.temperature),
	)
	if err != nil {
		return "", fmt.Errorf("reasoning service: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("reasoning service returned no choices")
	}
	return resp.Choices[0].Content, nil
}

// Close is a no-op; the underlying HTTP client needs no teardown.
func (r *OpenAIReasoner) Close() error { return nil }
