package models

// AutomationState is the displayed status of a workflow. No workflow runs in
// this system; states are static metadata.
type AutomationState string

const (
	AutomationActive AutomationState = "active"
	AutomationPaused AutomationState = "paused"
)

// AutomationStatus is one status card on the automations page.
type AutomationStatus struct {
	ID    WorkflowID      `json:"-"`
	Slug  string          `json:"id"`
	Label string          `json:"label"`
	State AutomationState `json:"state"`
}

// AutomationRun is one row of the static recent-history table.
type AutomationRun struct {
	When     string `json:"when"`
	Workflow string `json:"workflow"`
	Status   string `json:"status"`
	Detail   string `json:"detail"`
}

// ClientProfile is one row of the simplified CRM table on the clients page.
type ClientProfile struct {
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	LastVisit    string `json:"last_visit"`
	Status       string `json:"status"`
	Subscription string `json:"subscription"`
}
