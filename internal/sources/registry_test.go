package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nyayalegal/nyaya/internal/models"
)

func TestDefaultRegistryCoversAllTopics(t *testing.T) {
	reg := NewRegistry()
	for _, topic := range models.Topics {
		srcs := reg.Lookup(topic)
		if len(srcs) == 0 {
			t.Errorf("no default sources for topic %s", topic)
		}
		for _, s := range srcs {
			if s.URL == "" || s.Label == "" {
				t.Errorf("topic %s has incomplete source %+v", topic, s)
			}
		}
	}
}

func TestLookupUnknownTopicIsEmpty(t *testing.T) {
	reg := NewRegistry()
	if srcs := reg.Lookup(models.Topic("Tax Law")); len(srcs) != 0 {
		t.Fatalf("expected empty lookup, got %d sources", len(srcs))
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	srcs := reg.Lookup(models.TopicRTI)
	if len(srcs) == 0 {
		t.Fatal("no RTI sources")
	}
	srcs[0].URL = "https://tampered.example/"
	if reg.Lookup(models.TopicRTI)[0].URL == "https://tampered.example/" {
		t.Fatal("mutation through Lookup result leaked into registry")
	}
}

func TestLoadYAMLRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	data := `RTI:
  - url: https://rtionline.gov.in/
    label: RTI Online
Divorce:
  - url: https://nalsa.gov.in/
    label: NALSA
  - url: https://doj.gov.in/
    label: DoJ
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	reg, err := NewRegistryFromFile(path)
	if err != nil {
		t.Fatalf("NewRegistryFromFile: %v", err)
	}
	if got := reg.Lookup(models.TopicDivorce); len(got) != 2 {
		t.Fatalf("expected 2 divorce sources, got %d", len(got))
	}
	if got := reg.Lookup(models.TopicDomesticViolence); len(got) != 0 {
		t.Fatalf("override should not include DV sources, got %d", len(got))
	}
}

func TestLoadYAMLRejectsUnknownTopic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	data := "Maritime Law:\n  - url: https://example.gov/\n    label: X\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRegistryFromFile(path); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestLoadXLSXRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]string{
		{"topic", "url", "label"},
		{"RTI", "https://rtionline.gov.in/", "RTI Online"},
		{"RTI", "https://cic.gov.in/", "CIC"},
		{"Domestic Violence", "https://nalsa.gov.in/", "NALSA"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	reg, err := NewRegistryFromFile(path)
	if err != nil {
		t.Fatalf("NewRegistryFromFile: %v", err)
	}
	rti := reg.Lookup(models.TopicRTI)
	if len(rti) != 2 {
		t.Fatalf("expected 2 RTI sources, got %d", len(rti))
	}
	if rti[0].URL != "https://rtionline.gov.in/" {
		t.Fatalf("row order not preserved: %s", rti[0].URL)
	}
}

func TestUnsupportedRegistryFormat(t *testing.T) {
	if _, err := NewRegistryFromFile("sources.json"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestReloadKeepsOldContentsOnError(t *testing.T) {
	reg := NewRegistry()
	before := len(reg.Lookup(models.TopicRTI))
	if err := reg.Reload(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if after := len(reg.Lookup(models.TopicRTI)); after != before {
		t.Fatalf("registry changed after failed reload: %d -> %d", before, after)
	}
}
