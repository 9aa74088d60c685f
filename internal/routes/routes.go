package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arkose/analytics-api/internal/handlers"
	"github.com/arkose/analytics-api/internal/models"
)

// NewRouter sets up the API routes. Registration iterates the closed page set
// so a new page cannot be added without handling it here.
func NewRouter(
	dashboard *handlers.DashboardHandler,
	automations *handlers.AutomationHandler,
	clients *handlers.ClientHandler,
	settingsHandler *handlers.SettingsHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check route
	router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	for _, page := range models.Pages {
		switch page {
		case models.PageDashboard:
			api.HandleFunc("/dashboard/summary", dashboard.Summary).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/weekly", dashboard.Weekly).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/weekday-averages", dashboard.WeekdayAverages).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/filters", dashboard.FilterOptions).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/records", dashboard.Records).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/revenue", dashboard.Revenue).Methods(http.MethodGet)
			api.HandleFunc("/dashboard/export", dashboard.Export).Methods(http.MethodGet)
		case models.PageAutomations:
			api.HandleFunc("/automations", automations.List).Methods(http.MethodGet)
			api.HandleFunc("/automations/{workflowID}", automations.Get).Methods(http.MethodGet)
			api.HandleFunc("/automations/{workflowID}/export", automations.Export).Methods(http.MethodGet)
		case models.PageClients:
			api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
		case models.PageSettings:
			api.HandleFunc("/settings/pricing", settingsHandler.GetPricing).Methods(http.MethodGet)
			api.HandleFunc("/settings/pricing", settingsHandler.UpdatePricing).Methods(http.MethodPut)
			api.HandleFunc("/settings/mix", settingsHandler.GetMix).Methods(http.MethodGet)
			api.HandleFunc("/settings/mix", settingsHandler.UpdateMix).Methods(http.MethodPut)
			api.HandleFunc("/dataset/reload", settingsHandler.ReloadDataset).Methods(http.MethodPost)
		}
	}

	return router
}
