package dto

import (
	"encoding/csv"
	"io"
	"strconv"
)

var dashboardCSVHeader = []string{
	"date", "occupied_rooms", "total_rooms", "occupancy_rate", "overbooked",
	"revenue", "expense", "net_profit", "adr", "revpar",
}

const csvTotalLabel = "total"

// WriteCSV writes the day series followed by one total row and returns the number of day rows.
func (r DashboardResponse) WriteCSV(w io.Writer) (int, error) {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(dashboardCSVHeader); err != nil {
		return 0, err //nolint:wrapcheck
	}

	for _, day := range r.Days {
		if err := writer.Write([]string{
			day.Date,
			strconv.Itoa(day.OccupiedRooms),
			strconv.Itoa(day.TotalRooms),
			day.OccupancyRate.StringFixed(ratePlaces),
			strconv.FormatBool(day.Overbooked),
			day.Revenue.StringFixed(moneyPlaces),
			day.Expense.StringFixed(moneyPlaces),
			day.NetProfit.StringFixed(moneyPlaces),
			day.ADR.StringFixed(moneyPlaces),
			day.RevPAR.StringFixed(moneyPlaces),
		}); err != nil {
			return 0, err //nolint:wrapcheck
		}
	}

	summary := r.Summary
	if err := writer.Write([]string{
		csvTotalLabel,
		strconv.Itoa(summary.SoldRoomNights),
		strconv.Itoa(summary.SupplyRoomNights),
		summary.OccupancyRate.StringFixed(ratePlaces),
		strconv.Itoa(summary.OverbookedNights),
		summary.TotalRevenue.StringFixed(moneyPlaces),
		summary.TotalExpense.StringFixed(moneyPlaces),
		summary.NetProfit.StringFixed(moneyPlaces),
		summary.AvgADR.StringFixed(moneyPlaces),
		summary.AvgRevPAR.StringFixed(moneyPlaces),
	}); err != nil {
		return 0, err //nolint:wrapcheck
	}

	writer.Flush()

	return len(r.Days), writer.Error() //nolint:wrapcheck
}
