package models

import (
	"fmt"
	"time"
)

// AnalyzeRequest is the input for a triage analysis.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// Validate ensures the request has a non-empty query.
func (r *AnalyzeRequest) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}

// Analysis is the structured result of the reasoning step, annotated with
// retrieval provenance by the pipeline (ContextSource and SourcesUsed are
// never produced by the model itself).
type Analysis struct {
	IntentDetected        Topic         `json:"intent_detected"`
	KillSwitchTriggered   bool          `json:"kill_switch_triggered"`
	SimplifiedExplanation string        `json:"simplified_explanation"`
	RelevantActs          []string      `json:"relevant_acts"`
	ImmediateActionSteps  []string      `json:"immediate_action_steps"`
	ExtractedUserIssue    string        `json:"extracted_user_issue"`
	FollowUpQuestion      string        `json:"follow_up_question"`
	ContextSource         ContextSource `json:"context_source"`
	SourcesUsed           []string      `json:"sources_used"`
}

// HistoryEntry is one recorded analysis in the audit log.
type HistoryEntry struct {
	ID            string        `json:"id"`
	Query         string        `json:"query"`
	Topic         Topic         `json:"topic"`
	ContextSource ContextSource `json:"context_source"`
	SourcesUsed   []string      `json:"sources_used"`
	KillSwitch    bool          `json:"kill_switch"`
	CreatedAt     time.Time     `json:"created_at"`
}
