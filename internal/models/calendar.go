package models

import "time"

// The source data labels months and weekdays in French. The lists below carry
// the calendar order explicitly; no lexical sort can reconstruct it from the
// names alone.
var (
	Months = []string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	}
	Weekdays = []string{
		"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche",
	}
)

var (
	monthRank   = rankOf(Months)
	weekdayRank = rankOf(Weekdays)
)

func rankOf(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, name := range names {
		m[name] = i
	}
	return m
}

// MonthName returns the French label for a calendar month.
func MonthName(m time.Month) string {
	return Months[int(m)-1]
}

// MonthRank returns the calendar position of a French month name, or -1 for
// an unknown label.
func MonthRank(name string) int {
	if r, ok := monthRank[name]; ok {
		return r
	}
	return -1
}

// WeekdayRank returns the Monday-first position of a French weekday name, or
// -1 for an unknown label.
func WeekdayRank(name string) int {
	if r, ok := weekdayRank[name]; ok {
		return r
	}
	return -1
}
