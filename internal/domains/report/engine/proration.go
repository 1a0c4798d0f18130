package engine

import (
	"hotelier/internal/domains/reservation/model"
	"hotelier/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Nights counts the nights of a [checkIn, checkOut) stay, never less than one.
func Nights(checkIn, checkOut time.Time) int {
	return max(1, timezone.DaysBetween(checkIn, checkOut))
}

// Prorate splits total evenly across the stay rounding each night down to the cent.
// The last night absorbs the leftover cents so the nights always add back up to total.
func Prorate(total decimal.Decimal, checkIn, checkOut time.Time) []decimal.Decimal {
	nights := Nights(checkIn, checkOut)
	count := decimal.NewFromInt(int64(nights))

	base := total.Div(count).RoundFloor(moneyPlaces)
	remainder := total.Sub(base.Mul(count)).Round(moneyPlaces)

	amounts := make([]decimal.Decimal, nights)
	for idx := range amounts {
		amounts[idx] = base
	}

	amounts[nights-1] = base.Add(remainder)

	return amounts
}

// LineShares distributes one night's amount across lines weighted by rate per night,
// rounding each share independently. The shares may differ from nightly by a cent.
// Lines without any rate split the night evenly.
func LineShares(nightly decimal.Decimal, lines []model.Line) []decimal.Decimal {
	shares := make([]decimal.Decimal, len(lines))
	if len(lines) == 0 {
		return shares
	}

	totalRate := decimal.Zero
	for _, line := range lines {
		totalRate = totalRate.Add(line.RatePerNight)
	}

	if totalRate.IsZero() {
		even := nightly.Div(decimal.NewFromInt(int64(len(lines)))).Round(moneyPlaces)
		for idx := range shares {
			shares[idx] = even
		}

		return shares
	}

	for idx, line := range lines {
		shares[idx] = nightly.Mul(line.RatePerNight).Div(totalRate).Round(moneyPlaces)
	}

	return shares
}

// ratio divides and rounds, yielding zero when the denominator is zero.
func ratio(numerator, denominator decimal.Decimal, places int32) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}

	return numerator.Div(denominator).Round(places)
}
