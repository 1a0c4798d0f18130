package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldIsActive   = "is_active"
	FieldStatus     = "status"
	FieldDeletedAt  = "deleted_at"
)

type Status string

const (
	StatusAvailable    Status = "Available"
	StatusOccupied     Status = "Occupied"
	StatusDirty        Status = "Dirty"
	StatusOutOfService Status = "OutOfService"
)

type Room struct {
	ID           string `db:"id"`
	RoomNumber   string `db:"room_number"`
	RoomTypeID   string `db:"room_type_id"`
	RoomTypeName string `db:"room_type_name" table:"room_types" column:"name"`
	IsActive     bool   `db:"is_active"`
	Status       Status `db:"status"`
}

func (Room) GetJoinQuery() string {
	return "INNER JOIN room_types ON room_types.id = rooms.room_type_id"
}

// InService reports whether the room counts toward sellable supply.
func (r Room) InService() bool {
	return r.IsActive && r.Status != StatusOutOfService
}
