package model

import (
	"hotelier/shared"
	"hotelier/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldDescription   = "description"
	FieldCapacity      = "capacity"
	FieldBedType       = "bed_type"
	FieldAmenities     = "amenities"
	FieldImages        = "images"
	FieldIsAvailable   = "is_available"
	FieldCreatedAt     = "created_at"
)

const (
	DefaultCapacity = 2
	DefaultBedType  = "King"
)

type Room struct {
	ID            string         `db:"id"`
	HotelID       string         `db:"hotel_id"`
	RoomType      string         `db:"room_type"`
	PricePerNight string         `db:"price_per_night"`
	Description   string         `db:"description"`
	Capacity      int            `db:"capacity"`
	BedType       string         `db:"bed_type"`
	Amenities     pq.StringArray `db:"amenities"`
	Images        pq.StringArray `db:"images"`
	IsAvailable   bool           `db:"is_available"`
	model.Metadata

	HotelName *string `db:"hotel_name" table:"hotels" column:"name"`
	HotelCity *string `db:"hotel_city" table:"hotels" column:"city"`
}

func (Room) JoinQuery() string {
	return "LEFT JOIN hotels ON hotels.id = rooms.hotel_id"
}

// FormattedPrice is the nightly price with its digits grouped in threes.
func (r Room) FormattedPrice() string {
	return shared.GroupDigits(r.PricePerNight)
}
