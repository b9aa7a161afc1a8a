package sources

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/nyayalegal/nyaya/internal/models"
)

// loadYAML reads a registry override of the form:
//
//	RTI:
//	  - url: https://rtionline.gov.in/
//	    label: RTI Online Portal
func loadYAML(path string) (map[models.Topic][]models.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	var raw map[string][]models.Source
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return validate(raw)
}

// loadXLSX reads a registry override from a spreadsheet. Each row of the
// first sheet is (topic, url, label); a header row with "topic" in the first
// cell is skipped.
func loadXLSX(path string) (map[models.Topic][]models.Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open registry workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("registry workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read registry sheet: %w", err)
	}

	raw := make(map[string][]models.Source)
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		topic, url, label := row[0], row[1], row[2]
		if i == 0 && (topic == "topic" || topic == "Topic") {
			continue
		}
		if topic == "" || url == "" {
			continue
		}
		raw[topic] = append(raw[topic], models.Source{URL: url, Label: label})
	}
	return validate(raw)
}

// validate checks topics and URLs, preserving per-topic order.
func validate(raw map[string][]models.Source) (map[models.Topic][]models.Source, error) {
	out := make(map[models.Topic][]models.Source, len(raw))
	for name, srcs := range raw {
		topic := models.ParseTopic(name)
		if err := topic.Validate(); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		for _, s := range srcs {
			if s.URL == "" {
				return nil, fmt.Errorf("registry: topic %s has a source with empty url", topic)
			}
		}
		out[topic] = srcs
	}
	return out, nil
}
