package engine

import (
	"cmp"
	reportModel "hotelier/internal/domains/report/model"
	"hotelier/internal/domains/reservation/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const ratePlaces = 4

// OccupancyInput covers nights From..To, both inclusive.
type OccupancyInput struct {
	From             time.Time
	To               time.Time
	Mode             reportModel.Mode
	Reservations     []model.Reservation
	Supply           SupplySnapshot
	IncludeRoomTypes bool
}

type RoomTypeOccupancy struct {
	RoomTypeID    string
	RoomTypeName  string
	OccupiedRooms int
	TotalRooms    int
	OccupancyRate decimal.Decimal
}

type OccupancyDay struct {
	Date          time.Time
	OccupiedRooms int
	TotalRooms    int
	OccupancyRate decimal.Decimal
	Overbooked    bool
	RoomTypes     []RoomTypeOccupancy
}

// RoomTypeOccupancySummary aggregates one room type over the whole range.
type RoomTypeOccupancySummary struct {
	RoomTypeID       string
	RoomTypeName     string
	TotalRooms       int
	SoldRoomNights   int
	SupplyRoomNights int
	OccupancyRate    decimal.Decimal
}

type OccupancyResult struct {
	From             time.Time
	To               time.Time
	Mode             reportModel.Mode
	TotalRooms       int
	Nights           int
	SoldRoomNights   int
	SupplyRoomNights int
	OccupancyRate    decimal.Decimal
	OverbookedNights int
	Days             []OccupancyDay
	RoomTypes        []RoomTypeOccupancySummary
}

type roomTypeRef struct {
	id   string
	name string
}

// Occupancy counts distinct occupied rooms for each night in range.
func Occupancy(in OccupancyInput) OccupancyResult {
	to := in.To
	if to.Before(in.From) {
		to = in.From
	}

	toExclusive := to.AddDate(0, 0, 1)
	active := FilterWindow(in.Reservations, in.From, toExclusive, OccupancyStatuses(in.Mode))

	result := OccupancyResult{
		From:       in.From,
		To:         to,
		Mode:       in.Mode,
		TotalRooms: in.Supply.TotalRooms,
	}

	types := roomTypeOrder(in.Supply, active)
	soldByType := map[string]int{}

	for day := range Days(in.From, toExclusive) {
		occupied := map[string]struct{}{}
		occupiedByType := map[string]map[string]struct{}{}

		for _, res := range active {
			if !ActiveOn(res, day) {
				continue
			}

			for _, line := range res.Lines {
				occupied[line.RoomID] = struct{}{}

				if in.IncludeRoomTypes {
					if occupiedByType[line.RoomTypeID] == nil {
						occupiedByType[line.RoomTypeID] = map[string]struct{}{}
					}

					occupiedByType[line.RoomTypeID][line.RoomID] = struct{}{}
				}
			}
		}

		entry := OccupancyDay{
			Date:          day,
			OccupiedRooms: len(occupied),
			TotalRooms:    in.Supply.TotalRooms,
			OccupancyRate: rate(len(occupied), in.Supply.TotalRooms),
			Overbooked:    len(occupied) > in.Supply.TotalRooms,
		}

		if in.IncludeRoomTypes {
			entry.RoomTypes = make([]RoomTypeOccupancy, 0, len(types))

			for _, ref := range types {
				sold := len(occupiedByType[ref.id])
				total := in.Supply.roomsOfType(ref.id)
				soldByType[ref.id] += sold

				entry.RoomTypes = append(entry.RoomTypes, RoomTypeOccupancy{
					RoomTypeID:    ref.id,
					RoomTypeName:  ref.name,
					OccupiedRooms: sold,
					TotalRooms:    total,
					OccupancyRate: rate(sold, total),
				})
			}
		}

		if entry.Overbooked {
			result.OverbookedNights++
		}

		result.Nights++
		result.SoldRoomNights += entry.OccupiedRooms
		result.Days = append(result.Days, entry)
	}

	result.SupplyRoomNights = SupplyRoomNights(in.Supply.TotalRooms, result.Nights)
	result.OccupancyRate = rate(result.SoldRoomNights, result.SupplyRoomNights)

	if in.IncludeRoomTypes {
		for _, ref := range types {
			total := in.Supply.roomsOfType(ref.id)
			supply := SupplyRoomNights(total, result.Nights)

			result.RoomTypes = append(result.RoomTypes, RoomTypeOccupancySummary{
				RoomTypeID:       ref.id,
				RoomTypeName:     ref.name,
				TotalRooms:       total,
				SoldRoomNights:   soldByType[ref.id],
				SupplyRoomNights: supply,
				OccupancyRate:    rate(soldByType[ref.id], supply),
			})
		}
	}

	return result
}

// roomTypeOrder lists supplied room types first, then types only seen on reservations.
func roomTypeOrder(supply SupplySnapshot, reservations []model.Reservation) []roomTypeRef {
	refs := make([]roomTypeRef, 0, len(supply.RoomTypes))
	known := map[string]struct{}{}

	for _, rt := range supply.RoomTypes {
		refs = append(refs, roomTypeRef{id: rt.ID, name: rt.Name})
		known[rt.ID] = struct{}{}
	}

	extra := []roomTypeRef{}

	for _, res := range reservations {
		for _, line := range res.Lines {
			if _, ok := known[line.RoomTypeID]; ok {
				continue
			}

			known[line.RoomTypeID] = struct{}{}
			extra = append(extra, roomTypeRef{id: line.RoomTypeID, name: line.RoomTypeName})
		}
	}

	slices.SortFunc(extra, func(a, b roomTypeRef) int {
		return cmp.Or(cmp.Compare(a.name, b.name), cmp.Compare(a.id, b.id))
	})

	return append(refs, extra...)
}

func rate(sold, supply int) decimal.Decimal {
	return ratio(decimal.NewFromInt(int64(sold)), decimal.NewFromInt(int64(supply)), ratePlaces)
}
