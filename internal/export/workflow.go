package export

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/arkose/analytics-api/internal/models"
)

// WriteWorkflowJSON re-serializes a loaded workflow document for download.
// Node parameters and connections are raw JSON in the model, so field content
// round-trips exactly; indentation matches the n8n export convention.
func WriteWorkflowJSON(w io.Writer, doc models.WorkflowDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal workflow")
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return errors.Wrap(err, "write workflow")
}
