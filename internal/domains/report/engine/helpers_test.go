package engine_test

import (
	"hotelier/internal/domains/reservation/model"
	roomModel "hotelier/internal/domains/room/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func ptr[T any](v T) *T {
	return &v
}

func assertMoney(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()

	assert.Truef(t, money(expected).Equal(actual), "expected %s, got %s %v", expected, actual.String(), msgAndArgs)
}

func line(roomID, roomNumber, typeID, typeName, rate string) model.Line {
	return model.Line{
		ID:           "line-" + roomID,
		RoomID:       roomID,
		RoomNumber:   roomNumber,
		RoomTypeID:   typeID,
		RoomTypeName: typeName,
		RatePerNight: money(rate),
		Nights:       1,
	}
}

func stay(id string, status model.Status, checkIn, checkOut time.Time, total string, lines ...model.Line) model.Reservation {
	return model.Reservation{
		ID:           id,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		TotalAmount:  money(total),
		CurrencyCode: "USD",
		Lines:        lines,
	}
}

func rooms(count int, typeID, typeName string) []roomModel.Room {
	out := make([]roomModel.Room, 0, count)
	for idx := range count {
		out = append(out, roomModel.Room{
			ID:           typeID + "-" + string(rune('a'+idx)),
			RoomNumber:   string(rune('1' + idx)),
			RoomTypeID:   typeID,
			RoomTypeName: typeName,
			IsActive:     true,
			Status:       roomModel.StatusAvailable,
		})
	}

	return out
}
