package models

import "encoding/json"

// WorkflowDocument is an n8n workflow export, consumed read-only for display.
// Node parameters and the connection graph are kept as raw JSON so that
// re-serializing a loaded document preserves their content exactly; nothing
// in this system ever traverses the graph.
type WorkflowDocument struct {
	Name        string                     `json:"name"`
	Nodes       []WorkflowNode             `json:"nodes"`
	Connections map[string]json.RawMessage `json:"connections"`
}

// WorkflowNode is one step of a workflow. Field order mirrors the n8n export
// format.
type WorkflowNode struct {
	Parameters  json.RawMessage `json:"parameters"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	TypeVersion int             `json:"typeVersion"`
	Position    []int           `json:"position"`
	Notes       string          `json:"notes,omitempty"`
}

// WorkflowSummary is the descriptive view of a document: no execution, just
// the entry step and a per-step annotation table.
type WorkflowSummary struct {
	EntryStep string        `json:"entry_step"`
	StepCount int           `json:"step_count"`
	Steps     []StepSummary `json:"steps"`
}

// StepSummary annotates one step in document order.
type StepSummary struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Note  string `json:"note"`
}
