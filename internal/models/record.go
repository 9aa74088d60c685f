package models

import "time"

// DailyRecord is one row of the daily visits CSV. Date is the zero value when
// the source cell could not be parsed; such rows stay in the set so row counts
// match the source, but anything that orders or groups by calendar date must
// skip them.
type DailyRecord struct {
	Date              time.Time `json:"date"`
	Weekday           string    `json:"weekday"`
	Month             string    `json:"month"`
	Attendance        int       `json:"attendance"`
	MealsServed       int       `json:"meals_served"`
	MealConversionPct float64   `json:"meal_conversion_pct"`
	TotalVisitors     int       `json:"total_visitors"`
	Starters          int       `json:"starters"`
}

// HasValidDate reports whether the source date cell parsed successfully.
func (r DailyRecord) HasValidDate() bool {
	return !r.Date.IsZero()
}
