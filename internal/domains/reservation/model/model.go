package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName     = "reservations"
	LineTableName = "reservation_lines"
	EntityName    = "reservation"
	LineEntity    = "reservation_line"

	FieldID            = "id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldStatus        = "status"
	FieldCurrencyCode  = "currency_code"
	FieldDeletedAt     = "deleted_at"
	FieldReservationID = "reservation_id"
	FieldSortOrder     = "sort_order"
)

type Status string

const (
	StatusDraft      Status = "Draft"
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "CheckedIn"
	StatusCheckedOut Status = "CheckedOut"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "NoShow"
)

// Reservation is a stay over [CheckInDate, CheckOutDate); the checkout date itself is not a night.
type Reservation struct {
	ID                string          `db:"id"`
	ReservationNumber string          `db:"reservation_number"`
	GuestName         string          `db:"guest_name"`
	HotelName         *string         `db:"hotel_name"`
	BranchID          *string         `db:"branch_id"`
	BranchName        *string         `db:"branch_name"        table:"branches" column:"name"`
	CheckInDate       time.Time       `db:"check_in_date"`
	CheckOutDate      time.Time       `db:"check_out_date"`
	Status            Status          `db:"status"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	CurrencyCode      string          `db:"currency_code"`
	DeletedAt         *time.Time      `db:"deleted_at"`

	Lines []Line `db:"-"`
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN branches ON branches.id = reservations.branch_id"
}

func (r Reservation) Deleted() bool {
	return r.DeletedAt != nil
}

// Line books one room for the reservation. RatePerNight only weights how a night's revenue is split.
type Line struct {
	ID            string          `db:"id"`
	ReservationID string          `db:"reservation_id"`
	RoomID        string          `db:"room_id"`
	RoomNumber    string          `db:"room_number"    table:"rooms"      column:"room_number"`
	RoomTypeID    string          `db:"room_type_id"`
	RoomTypeName  string          `db:"room_type_name" table:"room_types" column:"name"`
	RatePerNight  decimal.Decimal `db:"rate_per_night"`
	Nights        int             `db:"nights"`
	LineTotal     decimal.Decimal `db:"line_total"`
	SortOrder     int             `db:"sort_order"`
}

func (Line) GetJoinQuery() string {
	return "INNER JOIN rooms ON rooms.id = reservation_lines.room_id " +
		"INNER JOIN room_types ON room_types.id = reservation_lines.room_type_id"
}

// Window selects reservations overlapping [From, ToExclusive). Empty Statuses or Currency match all.
type Window struct {
	From        time.Time
	ToExclusive time.Time
	Statuses    []Status
	Currency    string
}
