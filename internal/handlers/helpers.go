package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/arkose/analytics-api/internal/dataset"
	"github.com/arkose/analytics-api/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// criteriaFromQuery builds filter criteria from repeated month/weekday query
// params. Absent params mean "everything available" (the UI default-selects
// all options); a present-but-empty param deselects the axis and matches
// nothing.
func criteriaFromQuery(q url.Values, records []models.DailyRecord) models.FilterCriteria {
	months, ok := q["month"]
	if !ok {
		months = dataset.DistinctMonths(records)
	}
	weekdays, ok := q["weekday"]
	if !ok {
		weekdays = dataset.DistinctWeekdays(records)
	}
	return models.NewFilterCriteria(months, weekdays)
}

func floatParam(q url.Values, name string, fallback float64) float64 {
	raw := q.Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
