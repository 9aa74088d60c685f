package handlers

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/arkose/analytics-api/internal/analytics"
	"github.com/arkose/analytics-api/internal/dataset"
	"github.com/arkose/analytics-api/internal/export"
	"github.com/arkose/analytics-api/internal/models"
	"github.com/arkose/analytics-api/internal/settings"
)

type DashboardHandler struct {
	data     *dataset.Cache
	settings *settings.Store
	csvPath  string
	logger   zerolog.Logger
}

func NewDashboardHandler(data *dataset.Cache, store *settings.Store, csvPath string, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		data:     data,
		settings: store,
		csvPath:  csvPath,
		logger:   logger.With().Str("handler", "dashboard").Logger(),
	}
}

// filtered loads the record set and applies the query criteria. A missing or
// unreadable source renders as a 503 warning for this section only; an empty
// result after filtering is a normal 200 with no rows.
func (h *DashboardHandler) filtered(w http.ResponseWriter, r *http.Request) ([]models.DailyRecord, bool) {
	records, err := h.data.Records(h.csvPath)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			h.logger.Warn().Err(err).Msg("dataset unavailable")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"warning": "dataset unavailable"})
			return nil, false
		}
		h.logger.Error().Err(err).Msg("failed to load dataset")
		http.Error(w, "Failed to load dataset: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return dataset.Filter(records, criteriaFromQuery(r.URL.Query(), records)), true
}

// pricingFromQuery applies per-request price overrides on top of the stored
// assumptions (the dashboard expander lets the user tweak prices without
// saving them).
func (h *DashboardHandler) pricingFromQuery(r *http.Request) models.PricingAssumptions {
	q := r.URL.Query()
	p := h.settings.Pricing()
	p.PricePerEntry = floatParam(q, "price_entry", p.PricePerEntry)
	p.PricePerDish = floatParam(q, "price_dish", p.PricePerDish)
	p.PricePerStarter = floatParam(q, "price_starter", p.PricePerStarter)
	return p
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, analytics.Summary(records, h.pricingFromQuery(r)))
}

func (h *DashboardHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weeks": analytics.AggregateWeekly(records),
	})
}

func (h *DashboardHandler) WeekdayAverages(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"weekday_averages": analytics.WeekdayAverages(records),
	})
}

// FilterOptions returns the selectable month and weekday values present in
// the full record set, in calendar order.
func (h *DashboardHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	records, err := h.data.Records(h.csvPath)
	if err != nil {
		if errors.Is(err, dataset.ErrSourceUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"warning": "dataset unavailable"})
			return
		}
		http.Error(w, "Failed to load dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"months":   dataset.DistinctMonths(records),
		"weekdays": dataset.DistinctWeekdays(records),
	})
}

func (h *DashboardHandler) Records(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"count":   len(records),
	})
}

// Revenue estimates revenue for the filtered rows under the requested model.
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	model := r.URL.Query().Get("model")
	if model == "" {
		model = "flat"
	}

	switch model {
	case "flat":
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"model":    model,
			"estimate": analytics.EstimateFlat(records, h.pricingFromQuery(r)),
		})
	case "mix":
		mix := h.mixFromQuery(r)
		est := analytics.EstimateMix(records, mix, h.settings.Pricing())
		body := map[string]interface{}{
			"model":                  model,
			"estimate":               est,
			"weighted_session_price": mix.WeightedSessionPrice(),
			"unit_share":             mix.UnitShare(),
		}
		if est.Inconsistent {
			body["warning"] = "segment shares sum above 100%; unit share clamped to 0"
		}
		writeJSON(w, http.StatusOK, body)
	default:
		http.Error(w, "Unknown revenue model: "+model, http.StatusBadRequest)
	}
}

func (h *DashboardHandler) mixFromQuery(r *http.Request) models.MixAssumptions {
	q := r.URL.Query()
	m := h.settings.Mix()
	m.SubscriberPrice = floatParam(q, "price_sub", m.SubscriberPrice)
	m.SubscriberShare = floatParam(q, "share_sub", m.SubscriberShare)
	m.PackPrice = floatParam(q, "price_pack", m.PackPrice)
	m.PackShare = floatParam(q, "share_pack", m.PackShare)
	m.UnitPrice = floatParam(q, "price_unit", m.UnitPrice)
	return m
}

// Export downloads the filtered table as CSV (default) or XLSX.
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, ok := h.filtered(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="arkose_donnees_propres.csv"`)
		if err := export.WriteRecordsCSV(w, records); err != nil {
			h.logger.Error().Err(err).Msg("csv export failed")
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="arkose_donnees_propres.xlsx"`)
		if err := export.WriteRecordsXLSX(w, records); err != nil {
			h.logger.Error().Err(err).Msg("xlsx export failed")
		}
	default:
		http.Error(w, "Unknown export format: "+format, http.StatusBadRequest)
	}
}
