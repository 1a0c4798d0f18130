// Package timezone holds the hotel's local timezone and the notion of "today" that
// report ranges and the actual/forecast split are anchored to.
//
// Usage:
//
//	now := timezone.Now()                 // current time in the hotel timezone
//	day := timezone.TruncateDate(now)     // calendar date as midnight UTC
//	t, err := timezone.ParseDate("2024-03-01")
//
//	clock := timezone.NewClock()          // injectable source of "today"
//	clock = timezone.NewFixedClock(day)   // pinned clock for tests
//
// The timezone is configured via the APP_TIMEZONE environment variable using IANA names
// such as "UTC", "Asia/Jakarta" or "Europe/London".
package timezone
