package dto

import (
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/sanitize"
	"hotelier/shared/timezone"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	HotelID       string   `json:"hotelId"       validate:"required,uuid"`
	RoomType      string   `json:"roomType"      validate:"required,max=100"`
	PricePerNight string   `json:"pricePerNight" validate:"required,max=32"`
	Description   string   `json:"description"   validate:"omitempty,max=2000"`
	Capacity      int      `json:"capacity"      validate:"omitempty,gte=1"`
	BedType       string   `json:"bedType"       validate:"omitempty,max=50"`
	Amenities     []string `json:"amenities"     validate:"omitempty,dive,max=100"`
	Images        []string `json:"images"        validate:"omitempty,dive,url"`
	IsAvailable   *bool    `json:"isAvailable"`
}

// Sanitize strips markup from the free-text fields.
func (c *CreateRoomRequest) Sanitize() {
	c.RoomType = sanitize.Text(c.RoomType)
	c.Description = sanitize.Text(c.Description)
	c.BedType = sanitize.Text(c.BedType)
	c.Amenities = sanitize.Strings(c.Amenities)
}

func (c *CreateRoomRequest) ToModel(actor string) model.Room {
	room := model.Room{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		Description:   c.Description,
		Capacity:      c.Capacity,
		BedType:       c.BedType,
		Amenities:     pq.StringArray(c.Amenities),
		Images:        pq.StringArray(c.Images),
		IsAvailable:   true,
		Metadata:      gModel.NewMetadata(actor, timezone.Now()),
	}

	if c.IsAvailable != nil {
		room.IsAvailable = *c.IsAvailable
	}

	if room.Capacity == 0 {
		room.Capacity = model.DefaultCapacity
	}

	if room.BedType == "" {
		room.BedType = model.DefaultBedType
	}

	if room.Amenities == nil {
		room.Amenities = pq.StringArray{}
	}

	if room.Images == nil {
		room.Images = pq.StringArray{}
	}

	return room
}

type UpdateRoomRequest struct {
	RoomType      string         `db:"room_type"       json:"roomType"      validate:"omitempty,max=100"`
	PricePerNight string         `db:"price_per_night" json:"pricePerNight" validate:"omitempty,max=32"`
	Description   string         `db:"description"     json:"description"   validate:"omitempty,max=2000"`
	Capacity      int            `db:"capacity"        json:"capacity"      validate:"omitempty,gte=1"`
	BedType       string         `db:"bed_type"        json:"bedType"       validate:"omitempty,max=50"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"     validate:"omitempty,dive,max=100"`
	Images        pq.StringArray `db:"images"          json:"images"        validate:"omitempty,dive,url"`
	IsAvailable   *bool          `db:"is_available"    json:"isAvailable"`
}

func (u *UpdateRoomRequest) Sanitize() {
	u.RoomType = sanitize.Text(u.RoomType)
	u.Description = sanitize.Text(u.Description)
	u.BedType = sanitize.Text(u.BedType)

	if u.Amenities != nil {
		u.Amenities = sanitize.Strings(u.Amenities)
	}
}

// UploadImageRequest carries the multipart "image" field of an image upload.
type UploadImageRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

type HotelSummary struct {
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

type RoomResponse struct {
	ID             string        `json:"id"`
	HotelID        string        `json:"hotelId"`
	Hotel          *HotelSummary `json:"hotel,omitempty"`
	RoomType       string        `json:"roomType"`
	PricePerNight  string        `json:"pricePerNight"`
	FormattedPrice string        `json:"formattedPrice"`
	Description    string        `json:"description"`
	Capacity       int           `json:"capacity"`
	BedType        string        `json:"bedType"`
	Amenities      []string      `json:"amenities"`
	Images         []string      `json:"images"`
	IsAvailable    bool          `json:"isAvailable"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.HotelID = m.HotelID
	r.RoomType = m.RoomType
	r.PricePerNight = m.PricePerNight
	r.FormattedPrice = m.FormattedPrice()
	r.Description = m.Description
	r.Capacity = m.Capacity
	r.BedType = m.BedType
	r.Amenities = nonNil(m.Amenities)
	r.Images = nonNil(m.Images)
	r.IsAvailable = m.IsAvailable
	r.Metadata.FromModel(m.Metadata)

	if m.HotelName != nil {
		r.Hotel = &HotelSummary{
			Name: *m.HotelName,
			City: shared.Deref(m.HotelCity),
		}
	}
}

func ToResponse(m model.Room) RoomResponse {
	var res RoomResponse
	res.FromModel(m)

	return res
}

func ToResponses(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, 0, len(models))
	for _, m := range models {
		res = append(res, ToResponse(m))
	}

	return res
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
