package workflow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkose/analytics-api/internal/models"
)

const acquisitionDoc = `{
  "name": "Test - Acquisition",
  "nodes": [
    {"parameters": {}, "name": "Date Calculation", "type": "n8n-nodes-base.dateTime", "typeVersion": 1, "position": [100, 300]},
    {"parameters": {}, "name": "Schedule Trigger", "type": "n8n-nodes-base.scheduleTrigger", "typeVersion": 1, "position": [300, 300]},
    {"parameters": {}, "name": "Custom Step", "type": "n8n-nodes-base.code", "typeVersion": 1, "position": [500, 300], "notes": "note embarquée"}
  ],
  "connections": {
    "Date Calculation": {"main": [[{"node": "Schedule Trigger", "type": "main", "index": 0}]]}
  }
}`

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocument_Unavailable(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentUnavailable))
}

func TestLoadDocument_Malformed(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "broken.json", "{not json")
	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDocumentUnavailable))
}

func TestLoadDocument_EmptyIsNotUnavailable(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "empty.json", `{"name": "Vide", "nodes": [], "connections": {}}`)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	summary := Describe(doc)
	assert.Zero(t, summary.StepCount)
	assert.Empty(t, summary.EntryStep)
	assert.Empty(t, summary.Steps)
}

func TestDescribe_EntryStepSelection(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "acq.json", acquisitionDoc)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	summary := Describe(doc)
	require.Equal(t, 3, summary.StepCount)
	// The schedule node wins over document order, matched case-insensitively
	// on the type.
	assert.Equal(t, "Schedule Trigger", summary.EntryStep)
}

func TestDescribe_EntryStepFallback(t *testing.T) {
	doc := models.WorkflowDocument{
		Name: "Sans trigger",
		Nodes: []models.WorkflowNode{
			{Name: "First", Type: "n8n-nodes-base.code"},
			{Name: "Second", Type: "n8n-nodes-base.if"},
		},
	}
	assert.Equal(t, "First", Describe(doc).EntryStep)
}

func TestDescribe_Notes(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "acq.json", acquisitionDoc)
	doc, err := LoadDocument(path)
	require.NoError(t, err)

	steps := Describe(doc).Steps
	require.Len(t, steps, 3)

	// Curated dictionary first, embedded note next, empty last.
	assert.Equal(t, 1, steps[0].Index)
	assert.Equal(t, "Prend la date actuelle et soustrait 7 jours pour cibler la semaine passée.", steps[0].Note)
	assert.Equal(t, "note embarquée", steps[2].Note)

	noNote := Describe(models.WorkflowDocument{
		Nodes: []models.WorkflowNode{{Name: "Mystery", Type: "n8n-nodes-base.code"}},
	})
	assert.Empty(t, noNote.Steps[0].Note)
}

func TestRegistry(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "n8n_arkose_acquisition.json", acquisitionDoc)
	registry := NewRegistry(dir)

	entries := registry.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, models.WorkflowAcquisition, entries[0].ID)
	assert.Equal(t, models.AutomationActive, entries[0].State)
	assert.Equal(t, models.AutomationPaused, entries[1].State)

	doc, err := registry.LoadDocument(models.WorkflowAcquisition)
	require.NoError(t, err)
	assert.Equal(t, "Test - Acquisition", doc.Name)

	_, err = registry.LoadDocument(models.WorkflowLoyalty)
	assert.True(t, errors.Is(err, ErrDocumentUnavailable))
}

func TestRegistry_UnknownID(t *testing.T) {
	registry := NewRegistry(t.TempDir())

	// Values outside the closed set cannot come from ParseWorkflowID, but the
	// fallback still answers with a harmless placeholder.
	entry := registry.Entry(models.WorkflowID(99))
	assert.Equal(t, "Inconnu", entry.Label)
	assert.Empty(t, entry.File)
	assert.Empty(t, entry.State)
}
