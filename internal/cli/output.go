// Package cli provides output formatting for the Nyaya command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nyayalegal/nyaya/internal/models"
)

// OutputFormat selects how command results are written.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteAnalysis writes a triage analysis to w.
func WriteAnalysis(w io.Writer, analysis *models.Analysis, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, analysis)
	}

	if analysis.KillSwitchTriggered {
		fmt.Fprintln(w, "⚠ If you are in immediate danger, contact emergency services first.")
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Detected issue: %s\n\n", analysis.IntentDetected)
	fmt.Fprintf(w, "%s\n", analysis.SimplifiedExplanation)
	if len(analysis.RelevantActs) > 0 {
		fmt.Fprintln(w, "\nRelevant law:")
		for _, act := range analysis.RelevantActs {
			fmt.Fprintf(w, "  • %s\n", act)
		}
	}
	if len(analysis.ImmediateActionSteps) > 0 {
		fmt.Fprintln(w, "\nWhat you can do now:")
		for i, step := range analysis.ImmediateActionSteps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}
	if analysis.FollowUpQuestion != "" {
		fmt.Fprintf(w, "\nTo take this further: %s\n", analysis.FollowUpQuestion)
	}
	writeProvenance(w, analysis.ContextSource, analysis.SourcesUsed)
	return nil
}

// WriteFusedContext writes the raw retrieval result to w.
func WriteFusedContext(w io.Writer, fused *models.FusedContext, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, fused)
	}

	fmt.Fprintf(w, "Topic: %s\n", fused.Topic)
	writeProvenance(w, fused.ContextSource, fused.SourcesUsed)
	fmt.Fprintf(w, "\n%s\n", fused.Text)
	return nil
}

// WriteDebugViews writes the per-chunk retrieval debug view to w.
func WriteDebugViews(w io.Writer, views []models.ChunkDebugView, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, views)
	}

	for _, v := range views {
		fmt.Fprintf(w, "%d. [%s — %s] distance %.4f\n   %s\n", v.Rank, v.Topic, v.Section, v.Distance, v.Preview)
	}
	return nil
}

// WriteSources writes the source registry contents to w.
func WriteSources(w io.Writer, byTopic map[models.Topic][]models.Source, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, byTopic)
	}

	for _, topic := range models.Topics {
		srcs, ok := byTopic[topic]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s:\n", topic)
		for _, s := range srcs {
			fmt.Fprintf(w, "  • %s\n    %s\n", s.Label, s.URL)
		}
	}
	return nil
}

func writeProvenance(w io.Writer, source models.ContextSource, used []string) {
	fmt.Fprintf(w, "\nContext: %s\n", source)
	for _, label := range used {
		fmt.Fprintf(w, "  • %s\n", label)
	}
}
