package dto

import (
	"hotelier/internal/domains/report/engine"
	"hotelier/shared/constant"
	"time"
)

func formatDate(date time.Time) string {
	return date.Format(constant.DateOnlyFormat)
}

type OccupancyRoomType struct {
	RoomTypeID    string `json:"room_type_id"`
	RoomTypeName  string `json:"room_type_name"`
	OccupiedRooms int    `json:"occupied_rooms"`
	TotalRooms    int    `json:"total_rooms"`
	OccupancyRate Rate   `json:"occupancy_rate"`
}

type OccupancyDay struct {
	Date          string              `json:"date"`
	OccupiedRooms int                 `json:"occupied_rooms"`
	TotalRooms    int                 `json:"total_rooms"`
	OccupancyRate Rate                `json:"occupancy_rate"`
	Overbooked    bool                `json:"overbooked"`
	RoomTypes     []OccupancyRoomType `json:"room_types,omitempty"`
}

type OccupancyRoomTypeSummary struct {
	RoomTypeID       string `json:"room_type_id"`
	RoomTypeName     string `json:"room_type_name"`
	TotalRooms       int    `json:"total_rooms"`
	SoldRoomNights   int    `json:"sold_room_nights"`
	SupplyRoomNights int    `json:"supply_room_nights"`
	OccupancyRate    Rate   `json:"occupancy_rate"`
}

type OccupancyResponse struct {
	From             string                     `json:"from"`
	To               string                     `json:"to"`
	Mode             string                     `json:"mode"`
	TotalRooms       int                        `json:"total_rooms"`
	Nights           int                        `json:"nights"`
	SoldRoomNights   int                        `json:"sold_room_nights"`
	SupplyRoomNights int                        `json:"supply_room_nights"`
	OccupancyRate    Rate                       `json:"occupancy_rate"`
	OverbookedNights int                        `json:"overbooked_nights"`
	Days             []OccupancyDay             `json:"days"`
	RoomTypes        []OccupancyRoomTypeSummary `json:"room_types,omitempty"`
}

func (r *OccupancyResponse) FromResult(result engine.OccupancyResult) {
	r.From = formatDate(result.From)
	r.To = formatDate(result.To)
	r.Mode = string(result.Mode)
	r.TotalRooms = result.TotalRooms
	r.Nights = result.Nights
	r.SoldRoomNights = result.SoldRoomNights
	r.SupplyRoomNights = result.SupplyRoomNights
	r.OccupancyRate = NewRate(result.OccupancyRate)
	r.OverbookedNights = result.OverbookedNights

	r.Days = make([]OccupancyDay, len(result.Days))
	for i, day := range result.Days {
		r.Days[i] = OccupancyDay{
			Date:          formatDate(day.Date),
			OccupiedRooms: day.OccupiedRooms,
			TotalRooms:    day.TotalRooms,
			OccupancyRate: NewRate(day.OccupancyRate),
			Overbooked:    day.Overbooked,
		}

		for _, rt := range day.RoomTypes {
			r.Days[i].RoomTypes = append(r.Days[i].RoomTypes, OccupancyRoomType{
				RoomTypeID:    rt.RoomTypeID,
				RoomTypeName:  rt.RoomTypeName,
				OccupiedRooms: rt.OccupiedRooms,
				TotalRooms:    rt.TotalRooms,
				OccupancyRate: NewRate(rt.OccupancyRate),
			})
		}
	}

	for _, rt := range result.RoomTypes {
		r.RoomTypes = append(r.RoomTypes, OccupancyRoomTypeSummary{
			RoomTypeID:       rt.RoomTypeID,
			RoomTypeName:     rt.RoomTypeName,
			TotalRooms:       rt.TotalRooms,
			SoldRoomNights:   rt.SoldRoomNights,
			SupplyRoomNights: rt.SupplyRoomNights,
			OccupancyRate:    NewRate(rt.OccupancyRate),
		})
	}
}

type RevenueBucket struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
	Nights int    `json:"nights"`
}

// RevenueResponse covers nights From..To-1; To is exclusive.
type RevenueResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Mode     string          `json:"mode"`
	GroupBy  string          `json:"group_by"`
	Currency string          `json:"currency"`
	Total    Money           `json:"total"`
	Nights   int             `json:"nights"`
	Buckets  []RevenueBucket `json:"buckets"`
}

func (r *RevenueResponse) FromResult(result engine.RevenueResult, currency string) {
	r.From = formatDate(result.From)
	r.To = formatDate(result.ToExclusive)
	r.Mode = string(result.Mode)
	r.GroupBy = result.GroupBy.String()
	r.Currency = currency
	r.Total = NewMoney(result.Total)
	r.Nights = result.Nights

	r.Buckets = make([]RevenueBucket, len(result.Buckets))
	for i, bucket := range result.Buckets {
		r.Buckets[i] = RevenueBucket{
			Key:    bucket.Key.ID,
			Name:   bucket.Key.Name,
			Amount: NewMoney(bucket.Amount),
			Nights: bucket.Nights,
		}
	}
}

type DashboardSummary struct {
	Nights           int   `json:"nights"`
	TotalRooms       int   `json:"total_rooms"`
	SoldRoomNights   int   `json:"sold_room_nights"`
	SupplyRoomNights int   `json:"supply_room_nights"`
	OccupancyRate    Rate  `json:"occupancy_rate"`
	OverbookedNights int   `json:"overbooked_nights"`
	TotalRevenue     Money `json:"total_revenue"`
	TotalExpense     Money `json:"total_expense"`
	NetProfit        Money `json:"net_profit"`
	AvgADR           Money `json:"avg_adr"`
	AvgRevPAR        Money `json:"avg_revpar"`
}

type DashboardDay struct {
	Date          string `json:"date"`
	OccupiedRooms int    `json:"occupied_rooms"`
	TotalRooms    int    `json:"total_rooms"`
	OccupancyRate Rate   `json:"occupancy_rate"`
	Overbooked    bool   `json:"overbooked"`
	Revenue       Money  `json:"revenue"`
	Expense       Money  `json:"expense"`
	NetProfit     Money  `json:"net_profit"`
	ADR           Money  `json:"adr"`
	RevPAR        Money  `json:"revpar"`
}

type DashboardRoomType struct {
	RoomTypeID       string `json:"room_type_id"`
	RoomTypeName     string `json:"room_type_name"`
	TotalRooms       int    `json:"total_rooms"`
	SoldRoomNights   int    `json:"sold_room_nights"`
	SupplyRoomNights int    `json:"supply_room_nights"`
	OccupancyRate    Rate   `json:"occupancy_rate"`
	Revenue          Money  `json:"revenue"`
	ADR              Money  `json:"adr"`
}

type ExpenseCategory struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Amount       Money  `json:"amount"`
}

// DashboardResponse reports occupancy for From..To and money for From..To-1.
type DashboardResponse struct {
	From              string              `json:"from"`
	To                string              `json:"to"`
	Mode              string              `json:"mode"`
	Currency          string              `json:"currency"`
	Summary           DashboardSummary    `json:"summary"`
	Days              []DashboardDay      `json:"days"`
	RoomTypes         []DashboardRoomType `json:"room_types,omitempty"`
	ExpenseCategories []ExpenseCategory   `json:"expense_categories,omitempty"`
}

func (r *DashboardResponse) FromResult(result engine.DashboardResult) {
	r.From = formatDate(result.From)
	r.To = formatDate(result.To)
	r.Mode = string(result.Mode)
	r.Currency = result.Currency

	summary := result.Summary
	r.Summary = DashboardSummary{
		Nights:           summary.Nights,
		TotalRooms:       summary.TotalRooms,
		SoldRoomNights:   summary.SoldRoomNights,
		SupplyRoomNights: summary.SupplyRoomNights,
		OccupancyRate:    NewRate(summary.OccupancyRate),
		OverbookedNights: summary.OverbookedNights,
		TotalRevenue:     NewMoney(summary.TotalRevenue),
		TotalExpense:     NewMoney(summary.TotalExpense),
		NetProfit:        NewMoney(summary.NetProfit),
		AvgADR:           NewMoney(summary.AvgADR),
		AvgRevPAR:        NewMoney(summary.AvgRevPAR),
	}

	r.Days = make([]DashboardDay, len(result.Days))
	for i, day := range result.Days {
		r.Days[i] = DashboardDay{
			Date:          formatDate(day.Date),
			OccupiedRooms: day.OccupiedRooms,
			TotalRooms:    day.TotalRooms,
			OccupancyRate: NewRate(day.OccupancyRate),
			Overbooked:    day.Overbooked,
			Revenue:       NewMoney(day.Revenue),
			Expense:       NewMoney(day.Expense),
			NetProfit:     NewMoney(day.NetProfit),
			ADR:           NewMoney(day.ADR),
			RevPAR:        NewMoney(day.RevPAR),
		}
	}

	for _, rt := range result.RoomTypes {
		r.RoomTypes = append(r.RoomTypes, DashboardRoomType{
			RoomTypeID:       rt.RoomTypeID,
			RoomTypeName:     rt.RoomTypeName,
			TotalRooms:       rt.TotalRooms,
			SoldRoomNights:   rt.SoldRoomNights,
			SupplyRoomNights: rt.SupplyRoomNights,
			OccupancyRate:    NewRate(rt.OccupancyRate),
			Revenue:          NewMoney(rt.Revenue),
			ADR:              NewMoney(rt.ADR),
		})
	}

	for _, category := range result.ExpenseCategories {
		r.ExpenseCategories = append(r.ExpenseCategories, ExpenseCategory{
			CategoryID:   category.CategoryID,
			CategoryName: category.CategoryName,
			Amount:       NewMoney(category.Amount),
		})
	}
}

type ExportResponse struct {
	URL       string `json:"url"`
	ObjectKey string `json:"object_key"`
	Rows      int    `json:"rows"`
}
