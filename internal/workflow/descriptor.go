// Package workflow loads and summarizes the marketing automation documents.
// The documents describe n8n workflows that run elsewhere; this system only
// displays them and never executes a step.
package workflow

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/arkose/analytics-api/internal/models"
)

// ErrDocumentUnavailable marks a workflow document that is missing or
// malformed. It is distinct from a valid document with zero steps, and the
// distinction is preserved all the way to the presentation layer.
var ErrDocumentUnavailable = errors.New("workflow: document unavailable")

// LoadDocument reads and parses one workflow JSON file.
func LoadDocument(path string) (models.WorkflowDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.WorkflowDocument{}, errors.Wrapf(ErrDocumentUnavailable, "read %s: %v", path, err)
	}

	var doc models.WorkflowDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.WorkflowDocument{}, errors.Wrapf(ErrDocumentUnavailable, "parse %s: %v", path, err)
	}
	return doc, nil
}

// Describe summarizes a document: the entry step, the step count, and a
// per-step annotation table in document order. The entry step is the first
// node whose type mentions a schedule trigger, falling back to the first node.
// A document with zero nodes yields an empty entry step and no rows.
func Describe(doc models.WorkflowDocument) models.WorkflowSummary {
	summary := models.WorkflowSummary{
		StepCount: len(doc.Nodes),
		Steps:     make([]models.StepSummary, 0, len(doc.Nodes)),
	}

	entryFound := false
	for i, node := range doc.Nodes {
		if i == 0 {
			summary.EntryStep = node.Name
		}
		if !entryFound && strings.Contains(strings.ToLower(node.Type), "schedule") {
			summary.EntryStep = node.Name
			entryFound = true
		}
		summary.Steps = append(summary.Steps, models.StepSummary{
			Index: i + 1,
			Name:  node.Name,
			Type:  node.Type,
			Note:  StepNote(node.Name, node.Notes),
		})
	}
	return summary
}
