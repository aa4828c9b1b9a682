package model

import (
	"hotelier/shared/model"
	"slices"
	"time"

	"github.com/lib/pq"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldHotelID       = "hotel_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldGuests        = "guests"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldIsPaid        = "is_paid"
	FieldBookingDate   = "booking_date"
	FieldUserEmail     = "user_email"
	FieldUserName      = "user_name"
	FieldUserPhone     = "user_phone"
	FieldCreatedAt     = "created_at"
)

const (
	TopicCreated       = "booking.created"
	TopicStatusChanged = "booking.status_changed"
)

const (
	DefaultUserName = "Guest"
	DefaultGuests   = 1
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// RevenueStatuses are the statuses whose total price counts as revenue.
var RevenueStatuses = []Status{StatusConfirmed, StatusCompleted}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether a booking in s may move to next. Staying put is always
// allowed; cancelled and completed are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}

	return slices.Contains(transitions[s], next)
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "Credit Card"
	PaymentUPI          PaymentMethod = "UPI"
	PaymentPayAtHotel   PaymentMethod = "Pay At Hotel"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCreditCard, PaymentUPI, PaymentPayAtHotel, PaymentBankTransfer:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID            string        `db:"id"`
	UserID        string        `db:"user_id"`
	RoomID        string        `db:"room_id"`
	HotelID       string        `db:"hotel_id"`
	CheckInDate   time.Time     `db:"check_in_date"`
	CheckOutDate  time.Time     `db:"check_out_date"`
	Guests        int           `db:"guests"`
	TotalPrice    float64       `db:"total_price"`
	Status        Status        `db:"status"`
	PaymentMethod PaymentMethod `db:"payment_method"`
	IsPaid        bool          `db:"is_paid"`
	BookingDate   time.Time     `db:"booking_date"`
	UserEmail     string        `db:"user_email"`
	UserName      string        `db:"user_name"`
	UserPhone     string        `db:"user_phone"`
	model.Metadata

	HotelName       *string        `db:"hotel_name"           table:"hotels" column:"name"`
	HotelCity       *string        `db:"hotel_city"           table:"hotels" column:"city"`
	HotelAddress    *string        `db:"hotel_address"        table:"hotels" column:"address"`
	HotelContact    *string        `db:"hotel_contact"        table:"hotels" column:"contact"`
	RoomType        *string        `db:"room_type"            table:"rooms"  column:"room_type"`
	RoomPrice       *string        `db:"room_price_per_night" table:"rooms"  column:"price_per_night"`
	RoomAmenities   pq.StringArray `db:"room_amenities"       table:"rooms"  column:"amenities"`
	UserFirstName   *string        `db:"user_first_name"      table:"users"  column:"first_name"`
	UserLastName    *string        `db:"user_last_name"       table:"users"  column:"last_name"`
	UserAccountMail *string        `db:"user_account_email"   table:"users"  column:"email"`
	UserPhoneNumber *string        `db:"user_phone_number"    table:"users"  column:"phone_number"`
}

// JoinQuery expands the hotel, room and guest account. Bookings outlive all three, so every
// join is LEFT.
func (Booking) JoinQuery() string {
	return "LEFT JOIN hotels ON hotels.id = bookings.hotel_id " +
		"LEFT JOIN rooms ON rooms.id = bookings.room_id " +
		"LEFT JOIN users ON users.id = bookings.user_id"
}
