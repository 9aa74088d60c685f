package models

import "github.com/pkg/errors"

// Page identifies one of the four application views. Keeping the set closed
// lets route registration switch exhaustively instead of dispatching on raw
// strings.
type Page int

const (
	PageDashboard Page = iota
	PageAutomations
	PageClients
	PageSettings
)

// Pages lists every view in navigation order.
var Pages = []Page{PageDashboard, PageAutomations, PageClients, PageSettings}

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "dashboard"
	case PageAutomations:
		return "automations"
	case PageClients:
		return "clients"
	case PageSettings:
		return "settings"
	}
	return "unknown"
}

// WorkflowID identifies one of the three marketing automation workflows.
type WorkflowID int

const (
	WorkflowAcquisition WorkflowID = iota
	WorkflowConversion
	WorkflowLoyalty
)

// WorkflowIDs lists every workflow in display order.
var WorkflowIDs = []WorkflowID{WorkflowAcquisition, WorkflowConversion, WorkflowLoyalty}

func (id WorkflowID) String() string {
	switch id {
	case WorkflowAcquisition:
		return "acquisition"
	case WorkflowConversion:
		return "conversion"
	case WorkflowLoyalty:
		return "loyalty"
	}
	return "unknown"
}

// ParseWorkflowID maps a URL slug to its workflow.
func ParseWorkflowID(slug string) (WorkflowID, error) {
	switch slug {
	case "acquisition":
		return WorkflowAcquisition, nil
	case "conversion":
		return WorkflowConversion, nil
	case "loyalty":
		return WorkflowLoyalty, nil
	}
	return 0, errors.Errorf("unknown workflow %q", slug)
}
