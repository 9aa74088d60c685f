package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arkose/analytics-api/internal/dataset"
	"github.com/arkose/analytics-api/internal/models"
	"github.com/arkose/analytics-api/internal/settings"
)

type SettingsHandler struct {
	store   *settings.Store
	data    *dataset.Cache
	csvPath string
	logger  zerolog.Logger
}

func NewSettingsHandler(store *settings.Store, data *dataset.Cache, csvPath string, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:   store,
		data:    data,
		csvPath: csvPath,
		logger:  logger.With().Str("handler", "settings").Logger(),
	}
}

func (h *SettingsHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Pricing())
}

func (h *SettingsHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var payload models.PricingAssumptions
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.store.SetPricing(payload)
	h.logger.Info().
		Float64("price_per_entry", payload.PricePerEntry).
		Float64("price_per_dish", payload.PricePerDish).
		Float64("price_per_starter", payload.PricePerStarter).
		Msg("pricing assumptions updated")
	writeJSON(w, http.StatusOK, payload)
}

func (h *SettingsHandler) GetMix(w http.ResponseWriter, r *http.Request) {
	mix := h.store.Mix()
	writeJSON(w, http.StatusOK, mixBody(mix))
}

// UpdateMix stores new segment shares. A split above 100% is flagged in the
// response but accepted; the estimate clamps the unit share instead of
// rejecting the input.
func (h *SettingsHandler) UpdateMix(w http.ResponseWriter, r *http.Request) {
	var payload models.MixAssumptions
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	h.store.SetMix(payload)
	if payload.Inconsistent() {
		h.logger.Warn().
			Float64("subscriber_share", payload.SubscriberShare).
			Float64("pack_share", payload.PackShare).
			Msg("mix shares sum above 100%")
	}
	writeJSON(w, http.StatusOK, mixBody(payload))
}

func mixBody(mix models.MixAssumptions) map[string]interface{} {
	body := map[string]interface{}{
		"mix":                    mix,
		"unit_share":             mix.UnitShare(),
		"weighted_session_price": mix.WeightedSessionPrice(),
	}
	if mix.Inconsistent() {
		body["warning"] = "segment shares sum above 100%; unit share clamped to 0"
	}
	return body
}

// ReloadDataset discards the cached record set and parses the source again.
func (h *SettingsHandler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Reload(h.csvPath)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"warning": "dataset unavailable"})
			return
		}
		http.Error(w, "Failed to reload dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}
	h.logger.Info().Int("records", len(records)).Msg("dataset reloaded")
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": len(records)})
}
