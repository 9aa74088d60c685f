package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/arkose/analytics-api/internal/models"
)

// The simplified CRM view ships with sample profiles; the real client base
// lives in the Google Sheet the loyalty workflow reads.
var sampleClients = []models.ClientProfile{
	{LastName: "Dupont", FirstName: "Jean", LastVisit: "2025-01-12", Status: "Actif", Subscription: "Infinity"},
	{LastName: "Martin", FirstName: "Sophie", LastVisit: "2025-01-10", Status: "Actif", Subscription: "Carnet 10"},
	{LastName: "Durand", FirstName: "Luc", LastVisit: "2024-12-20", Status: "À relancer", Subscription: "Aucun"},
	{LastName: "Petit", FirstName: "Emma", LastVisit: "2025-01-14", Status: "Nouveau", Subscription: "Infinity"},
}

type ClientHandler struct {
	logger zerolog.Logger
}

func NewClientHandler(logger zerolog.Logger) *ClientHandler {
	return &ClientHandler{logger: logger.With().Str("handler", "clients").Logger()}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clients": sampleClients,
	})
}
