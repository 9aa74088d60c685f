package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arkose/analytics-api/internal/export"
	"github.com/arkose/analytics-api/internal/models"
	"github.com/arkose/analytics-api/internal/workflow"
)

type AutomationHandler struct {
	registry *workflow.Registry
	logger   zerolog.Logger
}

func NewAutomationHandler(registry *workflow.Registry, logger zerolog.Logger) *AutomationHandler {
	return &AutomationHandler{
		registry: registry,
		logger:   logger.With().Str("handler", "automation").Logger(),
	}
}

// List returns the status cards and the static recent-run history.
func (h *AutomationHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.registry.Entries()
	statuses := make([]models.AutomationStatus, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, models.AutomationStatus{
			ID:    e.ID,
			Slug:  e.ID.String(),
			Label: e.Label,
			State: e.State,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"workflows": statuses,
		"history":   workflow.RecentRuns(),
	})
}

// Get describes one workflow document: entry step, step count, per-step
// notes. A missing or malformed document is a 503 warning; a valid document
// with zero steps is a normal summary.
func (h *AutomationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := h.resolve(w, r)
	if !ok {
		return
	}

	doc, err := h.registry.LoadDocument(id)
	if err != nil {
		if errors.Is(err, workflow.ErrDocumentUnavailable) {
			h.logger.Warn().Err(err).Str("workflow", id.String()).Msg("document unavailable")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"warning": "workflow document unavailable: " + entry.File,
			})
			return
		}
		http.Error(w, "Failed to load workflow: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":      id.String(),
		"label":   entry.Label,
		"state":   entry.State,
		"name":    doc.Name,
		"summary": workflow.Describe(doc),
	})
}

// Export downloads the document re-serialized for import into n8n.
func (h *AutomationHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, entry, ok := h.resolve(w, r)
	if !ok {
		return
	}

	doc, err := h.registry.LoadDocument(id)
	if err != nil {
		if errors.Is(err, workflow.ErrDocumentUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"warning": "workflow document unavailable: " + entry.File,
			})
			return
		}
		http.Error(w, "Failed to load workflow: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+entry.File+`"`)
	if err := export.WriteWorkflowJSON(w, doc); err != nil {
		h.logger.Error().Err(err).Str("workflow", id.String()).Msg("workflow export failed")
	}
}

func (h *AutomationHandler) resolve(w http.ResponseWriter, r *http.Request) (models.WorkflowID, workflow.Entry, bool) {
	slug := mux.Vars(r)["workflowID"]
	id, err := models.ParseWorkflowID(slug)
	if err != nil {
		http.Error(w, "Workflow not found", http.StatusNotFound)
		return 0, workflow.Entry{}, false
	}
	return id, h.registry.Entry(id), true
}
