package engine

import (
	"cmp"
	roomModel "hotelier/internal/domains/room/model"
	"slices"
)

type RoomTypeSupply struct {
	ID    string
	Name  string
	Rooms int
}

// SupplySnapshot is the sellable inventory at the time of the query.
type SupplySnapshot struct {
	TotalRooms int
	RoomTypes  []RoomTypeSupply
}

// Supply counts distinct in-service rooms overall and per room type.
func Supply(rooms []roomModel.Room) SupplySnapshot {
	seen := make(map[string]struct{}, len(rooms))
	perType := map[string]*RoomTypeSupply{}

	for _, room := range rooms {
		if !room.InService() {
			continue
		}

		if _, dup := seen[room.ID]; dup {
			continue
		}

		seen[room.ID] = struct{}{}

		supply, ok := perType[room.RoomTypeID]
		if !ok {
			supply = &RoomTypeSupply{ID: room.RoomTypeID, Name: room.RoomTypeName}
			perType[room.RoomTypeID] = supply
		}

		supply.Rooms++
	}

	snapshot := SupplySnapshot{TotalRooms: len(seen)}
	for _, supply := range perType {
		snapshot.RoomTypes = append(snapshot.RoomTypes, *supply)
	}

	slices.SortFunc(snapshot.RoomTypes, func(a, b RoomTypeSupply) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	return snapshot
}

// SupplyRoomNights is the number of sellable room-nights over nights nights.
func SupplyRoomNights(totalRooms, nights int) int {
	return totalRooms * nights
}

func (s SupplySnapshot) roomsOfType(id string) int {
	for _, supply := range s.RoomTypes {
		if supply.ID == id {
			return supply.Rooms
		}
	}

	return 0
}
