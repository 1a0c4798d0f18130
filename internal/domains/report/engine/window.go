package engine

import (
	reportModel "hotelier/internal/domains/report/model"
	"hotelier/internal/domains/reservation/model"
	"iter"
	"slices"
	"time"
)

// OccupancyStatuses are the reservation statuses that occupy a room in each mode.
func OccupancyStatuses(mode reportModel.Mode) []model.Status {
	if mode == reportModel.ModeForecast {
		return []model.Status{model.StatusConfirmed, model.StatusDraft}
	}

	return []model.Status{model.StatusCheckedIn, model.StatusCheckedOut}
}

// RevenueStatuses are the statuses that can earn revenue; each night is then split by mode.
func RevenueStatuses() []model.Status {
	return []model.Status{model.StatusConfirmed, model.StatusCheckedIn, model.StatusCheckedOut}
}

// Overlaps reports whether the stay shares at least one night with [from, toExclusive).
func Overlaps(res model.Reservation, from, toExclusive time.Time) bool {
	return res.CheckInDate.Before(toExclusive) && res.CheckOutDate.After(from)
}

// ActiveOn reports whether night falls inside the stay. The checkout date is free.
func ActiveOn(res model.Reservation, night time.Time) bool {
	return !night.Before(res.CheckInDate) && res.CheckOutDate.After(night)
}

// FilterWindow keeps live reservations overlapping the window with one of statuses.
func FilterWindow(reservations []model.Reservation, from, toExclusive time.Time, statuses []model.Status) []model.Reservation {
	filtered := make([]model.Reservation, 0, len(reservations))

	for _, res := range reservations {
		if res.Deleted() || !slices.Contains(statuses, res.Status) || !Overlaps(res, from, toExclusive) {
			continue
		}

		filtered = append(filtered, res)
	}

	return filtered
}

// IncludeNight decides whether a revenue night belongs to mode. Nights before today of a
// checked-in stay are realized; tonight onward they are still expected.
func IncludeNight(mode reportModel.Mode, status model.Status, night, today time.Time) bool {
	switch mode {
	case reportModel.ModeActual:
		return status == model.StatusCheckedOut || (status == model.StatusCheckedIn && night.Before(today))
	case reportModel.ModeForecast:
		return status == model.StatusConfirmed || (status == model.StatusCheckedIn && !night.Before(today))
	default:
		return false
	}
}

// Days yields every calendar date in [from, toExclusive).
func Days(from, toExclusive time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for day := from; day.Before(toExclusive); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}
