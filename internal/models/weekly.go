package models

import "time"

// WeeklyBucket aggregates the daily records of one calendar week. WeekEnding
// is the Sunday that closes the week; weeks with no records simply do not
// appear in the output.
type WeeklyBucket struct {
	WeekEnding    time.Time `json:"week_ending"`
	Attendance    int       `json:"attendance"`
	Meals         int       `json:"meals"`
	TotalVisitors int       `json:"total_visitors"`
	ConversionPct float64   `json:"conversion_pct"`
}

// WeekdayAverage is the mean attendance for one weekday across the filtered
// period, used by the weekly-affluence bar chart.
type WeekdayAverage struct {
	Weekday       string  `json:"weekday"`
	AvgAttendance float64 `json:"avg_attendance"`
}

// DashboardSummary is the KPI card row at the top of the dashboard.
type DashboardSummary struct {
	TotalAttendance  int             `json:"total_attendance"`
	MealsServed      int             `json:"meals_served"`
	AvgConversionPct float64         `json:"avg_conversion_pct"`
	AvgDailyVisitors float64         `json:"avg_daily_visitors"`
	Revenue          RevenueEstimate `json:"revenue"`
}
