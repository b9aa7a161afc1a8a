package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nyayalegal/nyaya/internal/models"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != OutputText {
		t.Fatalf("ParseFormat(\"\") = %v, %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != OutputJSON {
		t.Fatalf("ParseFormat(json) = %v, %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteAnalysisText(t *testing.T) {
	analysis := &models.Analysis{
		IntentDetected:        models.TopicRTI,
		SimplifiedExplanation: "You can file an RTI application.",
		RelevantActs:          []string{"RTI Act 2005"},
		ImmediateActionSteps:  []string{"File online at rtionline.gov.in"},
		FollowUpQuestion:      "Which department?",
		ContextSource:         models.ContextWebSemantic,
		SourcesUsed:           []string{"RTI Online Portal"},
	}
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, analysis, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"RTI", "RTI Act 2005", "rtionline.gov.in", "web+semantic", "RTI Online Portal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteAnalysisKillSwitchBanner(t *testing.T) {
	analysis := &models.Analysis{
		IntentDetected:      models.TopicDomesticViolence,
		KillSwitchTriggered: true,
		ContextSource:       models.ContextSemanticOnly,
	}
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, analysis, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "immediate danger") {
		t.Fatalf("kill switch banner missing:\n%s", buf.String())
	}
}

func TestWriteAnalysisJSONRoundTrips(t *testing.T) {
	analysis := &models.Analysis{
		IntentDetected: models.TopicDivorce,
		ContextSource:  models.ContextSemanticOnly,
		SourcesUsed:    []string{},
	}
	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, analysis, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var parsed models.Analysis
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.IntentDetected != models.TopicDivorce {
		t.Fatalf("parsed = %+v", parsed)
	}
}

func TestWriteSourcesText(t *testing.T) {
	byTopic := map[models.Topic][]models.Source{
		models.TopicRTI: {{URL: "https://rtionline.gov.in/", Label: "RTI Online"}},
	}
	var buf bytes.Buffer
	if err := WriteSources(&buf, byTopic, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "rtionline.gov.in") {
		t.Fatalf("output = %s", buf.String())
	}
}

func TestWriteDebugViewsText(t *testing.T) {
	views := []models.ChunkDebugView{
		{Rank: 1, Topic: models.TopicRTI, Section: "Filing Procedure", Distance: 0.12, Preview: "Any citizen..."},
	}
	var buf bytes.Buffer
	if err := WriteDebugViews(&buf, views, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Filing Procedure") || !strings.Contains(buf.String(), "0.12") {
		t.Fatalf("output = %s", buf.String())
	}
}
