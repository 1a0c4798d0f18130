package repository_test

import (
	"hotelier/internal/domains/reservation/model"
	"hotelier/internal/domains/reservation/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWindowFilter(t *testing.T) {
	window := model.Window{
		From:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		ToExclusive: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
		Statuses:    []model.Status{model.StatusCheckedIn, model.StatusCheckedOut},
		Currency:    "USD",
	}

	filter := repository.WindowFilter(window)
	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(reservations.deleted_at IS NULL AND reservations.check_in_date < :window_end AND reservations.check_out_date > :window_start AND reservations.status IN (:status_0, :status_1)  AND reservations.currency_code = :currency_code)",
		where,
	)
	assert.Equal(t, map[string]any{
		"window_end":    "2026-02-08",
		"window_start":  "2026-02-01",
		"status_0":      "CheckedIn",
		"status_1":      "CheckedOut",
		"currency_code": "USD",
	}, args)
}

func TestWindowFilterWithoutStatusOrCurrency(t *testing.T) {
	filter := repository.WindowFilter(model.Window{
		From:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		ToExclusive: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	})

	where, args := filter.GetWhereClause()

	assert.NotContains(t, where, "status")
	assert.NotContains(t, where, "currency_code")
	assert.Len(t, args, 2)
}

func TestLinesFilter(t *testing.T) {
	filter := repository.LinesFilter([]string{"a", "b", "c"})
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(reservation_lines.reservation_id IN (:reservation_id_0, :reservation_id_1, :reservation_id_2) )", where)
	assert.Len(t, args, 3)
}
