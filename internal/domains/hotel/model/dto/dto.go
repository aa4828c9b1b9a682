package dto

import (
	"hotelier/internal/domains/hotel/model"
	roomDto "hotelier/internal/domains/room/model/dto"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/sanitize"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name    string  `json:"name"    validate:"required,max=255"`
	Address string  `json:"address" validate:"required,max=500"`
	Contact string  `json:"contact" validate:"required,max=100"`
	City    string  `json:"city"    validate:"required,max=100"`
	OwnerID *string `json:"ownerId" validate:"omitempty,uuid"`
}

// Sanitize strips markup from the free-text fields.
func (c *CreateHotelRequest) Sanitize() {
	c.Name = sanitize.Text(c.Name)
	c.Address = sanitize.Text(c.Address)
	c.Contact = sanitize.Text(c.Contact)
	c.City = sanitize.Text(c.City)
}

func (c *CreateHotelRequest) ToModel(actor string) model.Hotel {
	return model.Hotel{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Address:  c.Address,
		Contact:  c.Contact,
		City:     c.City,
		OwnerID:  c.OwnerID,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UpdateHotelRequest struct {
	Name    string  `db:"name"     json:"name"    validate:"omitempty,max=255"`
	Address string  `db:"address"  json:"address" validate:"omitempty,max=500"`
	Contact string  `db:"contact"  json:"contact" validate:"omitempty,max=100"`
	City    string  `db:"city"     json:"city"    validate:"omitempty,max=100"`
	OwnerID *string `db:"owner_id" json:"ownerId" validate:"omitempty,uuid"`
}

func (u *UpdateHotelRequest) Sanitize() {
	u.Name = sanitize.Text(u.Name)
	u.Address = sanitize.Text(u.Address)
	u.Contact = sanitize.Text(u.Contact)
	u.City = sanitize.Text(u.City)
}

type OwnerSummary struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email"`
}

type HotelResponse struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Contact string        `json:"contact"`
	City    string        `json:"city"`
	OwnerID *string       `json:"ownerId"`
	Owner   *OwnerSummary `json:"owner"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(m model.Hotel) {
	r.ID = m.ID
	r.Name = m.Name
	r.Address = m.Address
	r.Contact = m.Contact
	r.City = m.City
	r.OwnerID = m.OwnerID
	r.Metadata.FromModel(m.Metadata)

	if m.OwnerEmail != nil {
		r.Owner = &OwnerSummary{
			FirstName: shared.Deref(m.OwnerFirstName),
			LastName:  shared.Deref(m.OwnerLastName),
			Username:  shared.Deref(m.OwnerUsername),
			Email:     *m.OwnerEmail,
		}
	}
}

func ToResponse(m model.Hotel) HotelResponse {
	var res HotelResponse
	res.FromModel(m)

	return res
}

// HotelDetailResponse is a hotel with its rooms embedded. Rooms is always an array.
type HotelDetailResponse struct {
	HotelResponse
	Rooms []roomDto.RoomResponse `json:"rooms"`
}

func NewDetail(hotel HotelResponse, rooms []roomDto.RoomResponse) HotelDetailResponse {
	if rooms == nil {
		rooms = []roomDto.RoomResponse{}
	}

	return HotelDetailResponse{HotelResponse: hotel, Rooms: rooms}
}
