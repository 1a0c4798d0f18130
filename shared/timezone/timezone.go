package timezone

import (
	"hotelier/config"
	"hotelier/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Hotel timezone initialized")
}

// Now returns the current time in the hotel timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the hotel timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the hotel timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the hotel timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the hotel timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// TruncateDate drops the clock part of t, keeping the calendar date t shows in its own location.
// Dates are represented as midnight UTC so they compare and subtract cleanly.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.DateOnlyFormat, value)
}

// Today returns the current calendar date in the hotel timezone.
func Today() time.Time {
	return TruncateDate(Now())
}

// AddDays shifts a calendar date by n days.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// DaysBetween counts whole calendar days from a to b, negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(TruncateDate(b).Sub(TruncateDate(a)).Hours() / constant.HoursPerDay)
}

// Clock is the source of the hotel's current date.
type Clock interface {
	Now() time.Time
	Today() time.Time
}

type systemClock struct{}

// NewClock returns a clock reading the wall time in the hotel timezone.
func NewClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time   { return Now() }
func (systemClock) Today() time.Time { return Today() }

type fixedClock struct {
	now time.Time
}

// NewFixedClock returns a clock pinned to t.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{now: t}
}

func (c fixedClock) Now() time.Time   { return c.now }
func (c fixedClock) Today() time.Time { return TruncateDate(c.now) }
