// Package models defines core data structures for topics, chunks, sources, and analyses.
package models

import "fmt"

// Topic is a legal domain the assistant can triage.
type Topic string

const (
	// TopicRTI covers Right to Information Act queries.
	TopicRTI Topic = "RTI"
	// TopicDomesticViolence covers Protection of Women from Domestic Violence Act queries.
	TopicDomesticViolence Topic = "Domestic Violence"
	// TopicDivorce covers divorce and family-law queries.
	TopicDivorce Topic = "Divorce"
	// TopicUnknown is returned when a query falls outside the configured domains.
	TopicUnknown Topic = "Unknown"
)

// Topics lists the configured legal domains in their canonical order.
// TopicUnknown is deliberately excluded: it is a classification outcome,
// not a domain with corpus entries or web sources.
var Topics = []Topic{TopicRTI, TopicDomesticViolence, TopicDivorce}

// ParseTopic converts s to a Topic. Unrecognized values are returned as-is so
// that unconfigured topics degrade to empty context rather than an error.
func ParseTopic(s string) Topic {
	for _, t := range Topics {
		if string(t) == s {
			return t
		}
	}
	return Topic(s)
}

// Known reports whether t is one of the configured legal domains.
func (t Topic) Known() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// Validate returns an error if t is not a configured domain.
func (t Topic) Validate() error {
	if !t.Known() {
		return fmt.Errorf("unknown topic %q", string(t))
	}
	return nil
}
