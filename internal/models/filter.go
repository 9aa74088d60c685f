package models

// FilterCriteria narrows the record set to selected months and weekdays. A
// record passes only when both its month and weekday are selected, so an empty
// selection on either axis matches nothing.
type FilterCriteria struct {
	months   map[string]struct{}
	weekdays map[string]struct{}
}

// NewFilterCriteria builds criteria from the selected month and weekday names.
// Empty names are dropped: rows with unparsable dates carry an empty month,
// and an empty label must never become selectable.
func NewFilterCriteria(months, weekdays []string) FilterCriteria {
	return FilterCriteria{
		months:   toSet(months),
		weekdays: toSet(weekdays),
	}
}

// AllCriteria selects every month and every weekday.
func AllCriteria() FilterCriteria {
	return NewFilterCriteria(Months, Weekdays)
}

// Matches reports whether the record's month and weekday are both selected.
func (c FilterCriteria) Matches(r DailyRecord) bool {
	if _, ok := c.months[r.Month]; !ok {
		return false
	}
	_, ok := c.weekdays[r.Weekday]
	return ok
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}
