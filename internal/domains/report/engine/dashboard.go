package engine

import (
	expenseModel "hotelier/internal/domains/expense/model"
	reportModel "hotelier/internal/domains/report/model"
	"hotelier/internal/domains/reservation/model"
	"time"

	"github.com/shopspring/decimal"
)

// ResolveWindow fills in a missing from with today and a missing to with from+defaultDays.
// A to that is not after from becomes from+1 day.
func ResolveWindow(from, to *time.Time, today time.Time, defaultDays int) (time.Time, time.Time) {
	start := today
	if from != nil {
		start = *from
	}

	end := start.AddDate(0, 0, max(defaultDays, 1))
	if to != nil {
		end = *to
	}

	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}

	return start, end
}

// DashboardInput carries already fetched data. OccupancyReservations should be fetched with
// OccupancyStatuses(Mode) over [From, To+1) and RevenueReservations with RevenueStatuses()
// over [From, To).
type DashboardInput struct {
	From                     time.Time
	To                       time.Time
	Today                    time.Time
	Mode                     reportModel.Mode
	Currency                 string
	Supply                   SupplySnapshot
	OccupancyReservations    []model.Reservation
	RevenueReservations      []model.Reservation
	Expenses                 []expenseModel.Expense
	IncludeRoomTypes         bool
	IncludeExpenseCategories bool
}

type DashboardDay struct {
	Date          time.Time
	OccupiedRooms int
	TotalRooms    int
	OccupancyRate decimal.Decimal
	Overbooked    bool
	Revenue       decimal.Decimal
	Expense       decimal.Decimal
	NetProfit     decimal.Decimal
	ADR           decimal.Decimal
	RevPAR        decimal.Decimal
}

type DashboardSummary struct {
	Nights           int
	TotalRooms       int
	SoldRoomNights   int
	SupplyRoomNights int
	OccupancyRate    decimal.Decimal
	OverbookedNights int
	TotalRevenue     decimal.Decimal
	TotalExpense     decimal.Decimal
	NetProfit        decimal.Decimal
	AvgADR           decimal.Decimal
	AvgRevPAR        decimal.Decimal
}

type DashboardRoomType struct {
	RoomTypeID       string
	RoomTypeName     string
	TotalRooms       int
	SoldRoomNights   int
	SupplyRoomNights int
	OccupancyRate    decimal.Decimal
	Revenue          decimal.Decimal
	ADR              decimal.Decimal
}

type DashboardResult struct {
	From              time.Time
	To                time.Time
	Mode              reportModel.Mode
	Currency          string
	Summary           DashboardSummary
	Days              []DashboardDay
	RoomTypes         []DashboardRoomType
	ExpenseCategories []ExpenseCategory
}

// Dashboard aligns occupancy over From..To inclusive with revenue and expenses over
// From..To-1 and derives ADR, RevPAR and net profit per day and for the whole range.
func Dashboard(in DashboardInput) DashboardResult {
	lastRevenueNight := in.To.AddDate(0, 0, -1)

	occupancy := Occupancy(OccupancyInput{
		From:             in.From,
		To:               in.To,
		Mode:             in.Mode,
		Reservations:     in.OccupancyReservations,
		Supply:           in.Supply,
		IncludeRoomTypes: in.IncludeRoomTypes,
	})

	revenueInput := RevenueInput{
		From:         in.From,
		ToExclusive:  in.To,
		Today:        in.Today,
		Mode:         in.Mode,
		GroupBy:      reportModel.GroupByDay,
		Reservations: in.RevenueReservations,
	}
	revenueByDay := Revenue(revenueInput).ByID()

	expenses := Expenses(in.Expenses, in.From, lastRevenueNight, in.Currency)
	expenseByDay := expenses.ByDate()

	result := DashboardResult{
		From:     in.From,
		To:       in.To,
		Mode:     in.Mode,
		Currency: in.Currency,
		Days:     make([]DashboardDay, 0, len(occupancy.Days)),
	}

	totalRevenue := decimal.Zero
	totalExpense := decimal.Zero

	for _, day := range occupancy.Days {
		revenue := revenueByDay[dateKey(day.Date)]
		expense := expenseByDay[day.Date]

		totalRevenue = totalRevenue.Add(revenue)
		totalExpense = totalExpense.Add(expense)

		result.Days = append(result.Days, DashboardDay{
			Date:          day.Date,
			OccupiedRooms: day.OccupiedRooms,
			TotalRooms:    day.TotalRooms,
			OccupancyRate: day.OccupancyRate,
			Overbooked:    day.Overbooked,
			Revenue:       revenue,
			Expense:       expense,
			NetProfit:     revenue.Sub(expense),
			ADR:           perUnit(revenue, day.OccupiedRooms),
			RevPAR:        perUnit(revenue, day.TotalRooms),
		})
	}

	result.Summary = DashboardSummary{
		Nights:           occupancy.Nights,
		TotalRooms:       occupancy.TotalRooms,
		SoldRoomNights:   occupancy.SoldRoomNights,
		SupplyRoomNights: occupancy.SupplyRoomNights,
		OccupancyRate:    occupancy.OccupancyRate,
		OverbookedNights: occupancy.OverbookedNights,
		TotalRevenue:     totalRevenue,
		TotalExpense:     totalExpense,
		NetProfit:        totalRevenue.Sub(totalExpense),
		AvgADR:           perUnit(totalRevenue, occupancy.SoldRoomNights),
		AvgRevPAR:        perUnit(totalRevenue, occupancy.SupplyRoomNights),
	}

	if in.IncludeRoomTypes {
		revenueInput.GroupBy = reportModel.GroupByRoomType
		revenueByType := Revenue(revenueInput).ByID()

		for _, rt := range occupancy.RoomTypes {
			revenue := revenueByType[rt.RoomTypeID]

			result.RoomTypes = append(result.RoomTypes, DashboardRoomType{
				RoomTypeID:       rt.RoomTypeID,
				RoomTypeName:     rt.RoomTypeName,
				TotalRooms:       rt.TotalRooms,
				SoldRoomNights:   rt.SoldRoomNights,
				SupplyRoomNights: rt.SupplyRoomNights,
				OccupancyRate:    rt.OccupancyRate,
				Revenue:          revenue,
				ADR:              perUnit(revenue, rt.SoldRoomNights),
			})
		}
	}

	if in.IncludeExpenseCategories {
		result.ExpenseCategories = expenses.Categories
	}

	return result
}

func perUnit(amount decimal.Decimal, units int) decimal.Decimal {
	return ratio(amount, decimal.NewFromInt(int64(units)), moneyPlaces)
}
