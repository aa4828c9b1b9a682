package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID        string              `json:"userId"        validate:"required,uuid"`
	RoomID        string              `json:"roomId"        validate:"required,uuid"`
	HotelID       string              `json:"hotelId"       validate:"required,uuid"`
	CheckInDate   string              `json:"checkInDate"   validate:"required"`
	CheckOutDate  string              `json:"checkOutDate"  validate:"required"`
	Guests        int                 `json:"guests"        validate:"omitempty,gte=1"`
	TotalPrice    float64             `json:"totalPrice"    validate:"required,gt=0"`
	Status        model.Status        `json:"status"        validate:"omitempty,enum"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod" validate:"omitempty,enum"`
	IsPaid        bool                `json:"isPaid"`
	UserEmail     string              `json:"userEmail"     validate:"required,email"`
	UserName      string              `json:"userName"      validate:"omitempty,max=255"`
	UserPhone     string              `json:"userPhone"     validate:"omitempty,max=32"`
}

func (c *CreateBookingRequest) Normalize() {
	c.UserEmail = strings.ToLower(strings.TrimSpace(c.UserEmail))
	c.UserName = strings.TrimSpace(c.UserName)
	c.UserPhone = strings.TrimSpace(c.UserPhone)
}

// ToModel fills the defaults of a new booking: confirmed, pay at hotel, one guest named Guest.
func (c *CreateBookingRequest) ToModel(actor string) (model.Booking, error) {
	checkIn, checkOut, err := parseStay(c.CheckInDate, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	now := timezone.Now()

	booking := model.Booking{
		ID:            uuid.NewString(),
		UserID:        c.UserID,
		RoomID:        c.RoomID,
		HotelID:       c.HotelID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Guests:        c.Guests,
		TotalPrice:    c.TotalPrice,
		Status:        c.Status,
		PaymentMethod: c.PaymentMethod,
		IsPaid:        c.IsPaid,
		BookingDate:   now,
		UserEmail:     c.UserEmail,
		UserName:      c.UserName,
		UserPhone:     c.UserPhone,
		Metadata:      gModel.NewMetadata(actor, now),
	}

	if booking.Guests == 0 {
		booking.Guests = model.DefaultGuests
	}

	if booking.Status == "" {
		booking.Status = model.StatusConfirmed
	}

	if booking.PaymentMethod == "" {
		booking.PaymentMethod = model.PaymentPayAtHotel
	}

	if booking.UserName == "" {
		booking.UserName = model.DefaultUserName
	}

	return booking, nil
}

// UpdateBookingRequest edits everything but the status, which only moves through
// UpdateStatusRequest.
type UpdateBookingRequest struct {
	CheckInDate   string              `db:"-"              json:"checkInDate"   validate:"omitempty"`
	CheckOutDate  string              `db:"-"              json:"checkOutDate"  validate:"omitempty"`
	Guests        int                 `db:"guests"         json:"guests"        validate:"omitempty,gte=1"`
	TotalPrice    float64             `db:"total_price"    json:"totalPrice"    validate:"omitempty,gt=0"`
	PaymentMethod model.PaymentMethod `db:"payment_method" json:"paymentMethod" validate:"omitempty,enum"`
	IsPaid        *bool               `db:"is_paid"        json:"isPaid"        validate:"omitempty"`
	UserEmail     string              `db:"user_email"     json:"userEmail"     validate:"omitempty,email"`
	UserName      string              `db:"user_name"      json:"userName"      validate:"omitempty,max=255"`
	UserPhone     string              `db:"user_phone"     json:"userPhone"     validate:"omitempty,max=32"`
}

func (u *UpdateBookingRequest) Normalize() {
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
}

// ToFields renders the supplied fields as an UPDATE column map.
func (u *UpdateBookingRequest) ToFields(actor string) (map[string]any, error) {
	fields := shared.TransformFields(*u, actor)

	if u.CheckInDate != "" && u.CheckOutDate != "" {
		checkIn, checkOut, err := parseStay(u.CheckInDate, u.CheckOutDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldCheckInDate] = checkIn
		fields[model.FieldCheckOutDate] = checkOut

		return fields, nil
	}

	for field, value := range map[string]string{
		model.FieldCheckInDate:  u.CheckInDate,
		model.FieldCheckOutDate: u.CheckOutDate,
	} {
		if value == "" {
			continue
		}

		parsed, err := parseDate(field, value)
		if err != nil {
			return nil, err
		}

		fields[field] = parsed
	}

	return fields, nil
}

type UpdateStatusRequest struct {
	Status model.Status `db:"status" json:"status" validate:"required,enum"`
}

type HotelSummary struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type RoomSummary struct {
	RoomType      string   `json:"roomType"`
	PricePerNight string   `json:"pricePerNight,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

type UserSummary struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type BookingResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	RoomID        string              `json:"roomId"`
	HotelID       string              `json:"hotelId"`
	Hotel         *HotelSummary       `json:"hotel"`
	Room          *RoomSummary        `json:"room"`
	User          *UserSummary        `json:"user"`
	CheckInDate   string              `json:"checkInDate"`
	CheckOutDate  string              `json:"checkOutDate"`
	Guests        int                 `json:"guests"`
	TotalPrice    float64             `json:"totalPrice"`
	Status        model.Status        `json:"status"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	IsPaid        bool                `json:"isPaid"`
	BookingDate   string              `json:"bookingDate"`
	UserEmail     string              `json:"userEmail"`
	UserName      string              `json:"userName"`
	UserPhone     string              `json:"userPhone"`
	gDto.Metadata
}

// FromModel copies the booking and whichever relations still exist. A deleted hotel, room
// or user leaves the matching summary nil.
func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.RoomID = m.RoomID
	r.HotelID = m.HotelID
	r.CheckInDate = timezone.Format(m.CheckInDate, constant.DateFormat)
	r.CheckOutDate = timezone.Format(m.CheckOutDate, constant.DateFormat)
	r.Guests = m.Guests
	r.TotalPrice = m.TotalPrice
	r.Status = m.Status
	r.PaymentMethod = m.PaymentMethod
	r.IsPaid = m.IsPaid
	r.BookingDate = timezone.Format(m.BookingDate, constant.DateFormat)
	r.UserEmail = m.UserEmail
	r.UserName = m.UserName
	r.UserPhone = m.UserPhone
	r.Metadata.FromModel(m.Metadata)

	if m.HotelName != nil {
		r.Hotel = &HotelSummary{
			Name:    *m.HotelName,
			City:    shared.Deref(m.HotelCity),
			Address: shared.Deref(m.HotelAddress),
			Contact: shared.Deref(m.HotelContact),
		}
	}

	if m.RoomType != nil {
		r.Room = &RoomSummary{
			RoomType:      *m.RoomType,
			PricePerNight: shared.Deref(m.RoomPrice),
			Amenities:     m.RoomAmenities,
		}
	}

	if m.UserFirstName != nil || m.UserAccountMail != nil {
		r.User = &UserSummary{
			FirstName:   shared.Deref(m.UserFirstName),
			LastName:    shared.Deref(m.UserLastName),
			Email:       shared.Deref(m.UserAccountMail),
			PhoneNumber: shared.Deref(m.UserPhoneNumber),
		}
	}
}

func ToResponse(m model.Booking) BookingResponse {
	var res BookingResponse
	res.FromModel(m)

	return res
}

func parseStay(checkInValue, checkOutValue string) (checkIn, checkOut time.Time, err error) {
	if checkIn, err = parseDate(model.FieldCheckInDate, checkInValue); err != nil {
		return checkIn, checkOut, err
	}

	if checkOut, err = parseDate(model.FieldCheckOutDate, checkOutValue); err != nil {
		return checkIn, checkOut, err
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, ErrStayOrder
	}

	return checkIn, checkOut, nil
}

func parseDate(field, value string) (time.Time, error) {
	parsed, err := timezone.ParseDate(value)
	if err != nil {
		return parsed, failure.BadRequestFromString(jsonName(field) + " must be a YYYY-MM-DD date or an RFC3339 timestamp") //nolint:wrapcheck
	}

	return parsed, nil
}

// ErrStayOrder rejects a check-out on or before the check-in.
var ErrStayOrder = failure.BadRequestFromString("checkOutDate must be after checkInDate")

func jsonName(field string) string {
	switch field {
	case model.FieldCheckInDate:
		return "checkInDate"
	case model.FieldCheckOutDate:
		return "checkOutDate"
	default:
		return field
	}
}
