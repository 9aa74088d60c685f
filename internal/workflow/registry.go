package workflow

import (
	"path/filepath"

	"github.com/arkose/analytics-api/internal/models"
)

// Entry binds a workflow to its document file and displayed status. The set
// of workflows is closed; states are static metadata, nothing here runs.
type Entry struct {
	ID    models.WorkflowID
	Label string
	File  string
	State models.AutomationState
}

// Registry resolves the fixed workflow set against a documents directory.
type Registry struct {
	dir string
}

func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

// Entry returns the registry entry for a workflow.
func (r *Registry) Entry(id models.WorkflowID) Entry {
	switch id {
	case models.WorkflowAcquisition:
		return Entry{
			ID:    id,
			Label: "Acquisition Heures Creuses",
			File:  "n8n_arkose_acquisition.json",
			State: models.AutomationActive,
		}
	case models.WorkflowConversion:
		return Entry{
			ID:    id,
			Label: "Conversion Restauration",
			File:  "n8n_arkose_conversion.json",
			State: models.AutomationPaused,
		}
	case models.WorkflowLoyalty:
		return Entry{
			ID:    id,
			Label: "Fidélisation J+21",
			File:  "n8n_arkose_fidelisation.json",
			State: models.AutomationActive,
		}
	}
	// models.WorkflowIDs is the full set; an unknown value cannot come from
	// ParseWorkflowID.
	return Entry{ID: id, Label: "Inconnu"}
}

// Entries lists every workflow in display order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(models.WorkflowIDs))
	for _, id := range models.WorkflowIDs {
		out = append(out, r.Entry(id))
	}
	return out
}

// LoadDocument reads the document behind a workflow.
func (r *Registry) LoadDocument(id models.WorkflowID) (models.WorkflowDocument, error) {
	return LoadDocument(filepath.Join(r.dir, r.Entry(id).File))
}

// RecentRuns is the static history shown on the automations page. The
// workflows execute in n8n; this system has no visibility beyond what the
// marketing team last reported.
func RecentRuns() []models.AutomationRun {
	return []models.AutomationRun{
		{When: "Aujourd'hui 10:00", Workflow: "Conversion Resto", Status: "Succès", Detail: "Ratio 12% détecté"},
		{When: "Hier 14:00", Workflow: "Relance J+21", Status: "Succès", Detail: "3 emails envoyés"},
		{When: "Hier 09:00", Workflow: "Acquisition", Status: "Alerte Slack envoyée", Detail: "Créneau vide mardi"},
	}
}
