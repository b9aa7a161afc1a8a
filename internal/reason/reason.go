// Package reason invokes the external reasoning service: given a user query
// and a fused legal context, it produces a structured Analysis. The service
// is opaque behind the Reasoner interface so the retrieval pipeline can be
// exercised without a live model.
package reason

import (
	"context"

	"github.com/nyayalegal/nyaya/internal/models"
)

// Reasoner turns a query plus fused context into a structured analysis.
type Reasoner interface {
	// Analyze returns the structured triage result. Provenance fields
	// (ContextSource, SourcesUsed) are copied from fused, never invented
	// by the model.
	Analyze(ctx context.Context, query string, fused models.FusedContext) (*models.Analysis, error)

	// ExtractForm pulls values for the named fields out of a free-text
	// conversation. Fields the text does not answer are absent from the
	// returned map.
	ExtractForm(ctx context.Context, conversation string, fields []string) (map[string]string, error)

	Close() error
}
