package timezone_test

import (
	"hotelier/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesHotelLocation(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestTruncateDate(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 23:30 on the 1st in Jakarta is still the 1st there even though it is the 1st 16:30 UTC.
	local := time.Date(2024, 3, 1, 23, 30, 0, 0, jakarta)

	got := timezone.TruncateDate(local)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	got, err := timezone.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = timezone.ParseDate("2024-13-01")
	assert.Error(t, err)

	_, err = timezone.ParseDate("01/03/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, timezone.DaysBetween(a, timezone.AddDays(a, 3)))
	assert.Equal(t, -1, timezone.DaysBetween(a, timezone.AddDays(a, -1)))
	assert.Equal(t, 0, timezone.DaysBetween(a, a))
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2024, 3, 5, 18, 45, 0, 0, time.UTC)
	clock := timezone.NewFixedClock(pinned)

	assert.Equal(t, pinned, clock.Now())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), clock.Today())
}

func TestSystemClock(t *testing.T) {
	clock := timezone.NewClock()

	assert.Equal(t, timezone.TruncateDate(timezone.Now()), clock.Today())
}
