package dto_test

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		UserID:       "2b1b7a3c-6a55-4e0b-9d0a-8f0e5a2c1d11",
		RoomID:       "8e3f5b6a-1c2d-4e5f-8a9b-0c1d2e3f4a5b",
		HotelID:      "5d6e7f80-9a0b-4c1d-8e2f-3a4b5c6d7e8f",
		CheckInDate:  "2025-03-01",
		CheckOutDate: "2025-03-04",
		TotalPrice:   4500,
		UserEmail:    "guest@example.com",
	}

	booking, err := req.ToModel("guest")
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, model.PaymentPayAtHotel, booking.PaymentMethod)
	assert.Equal(t, model.DefaultUserName, booking.UserName)
	assert.Equal(t, model.DefaultGuests, booking.Guests)
	assert.False(t, booking.BookingDate.IsZero())
	assert.Equal(t, "guest", booking.CreatedBy)
	assert.Equal(t, 3*24*time.Hour, booking.CheckOutDate.Sub(booking.CheckInDate))
}

func TestCreateBookingRequest_ToModel_KeepsSuppliedValues(t *testing.T) {
	req := dto.CreateBookingRequest{
		CheckInDate:   "2025-03-01T12:00:00Z",
		CheckOutDate:  "2025-03-02T10:00:00Z",
		Guests:        3,
		Status:        model.StatusPending,
		PaymentMethod: model.PaymentUPI,
		UserName:      "Asha",
	}

	booking, err := req.ToModel("admin")
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Guests)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentUPI, booking.PaymentMethod)
	assert.Equal(t, "Asha", booking.UserName)
}

func TestCreateBookingRequest_ToModel_RejectsBadStay(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "check-out before check-in", checkIn: "2025-03-04", checkOut: "2025-03-01"},
		{name: "same day", checkIn: "2025-03-04", checkOut: "2025-03-04"},
		{name: "unparsable", checkIn: "soon", checkOut: "2025-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut}

			_, err := req.ToModel("guest")

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestUpdateBookingRequest_ToFields(t *testing.T) {
	paid := true
	req := dto.UpdateBookingRequest{
		CheckOutDate: "2025-03-05",
		IsPaid:       &paid,
		UserName:     "Ravi",
	}

	fields, err := req.ToFields("admin")
	require.NoError(t, err)

	assert.Equal(t, &paid, fields[model.FieldIsPaid])
	assert.Equal(t, "Ravi", fields[model.FieldUserName])
	assert.Contains(t, fields, model.FieldCheckOutDate)
	assert.NotContains(t, fields, model.FieldCheckInDate)
	assert.NotContains(t, fields, model.FieldStatus)
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
}

func TestBookingResponse_FromModel(t *testing.T) {
	hotelName := "Sea Breeze"
	city := "Goa"
	roomType := "Deluxe"

	booking := model.Booking{
		ID:        "booking-1",
		HotelID:   "hotel-1",
		Status:    model.StatusConfirmed,
		HotelName: &hotelName,
		HotelCity: &city,
		RoomType:  &roomType,
		Metadata:  gModel.Metadata{CreatedBy: "guest"},
	}

	res := dto.ToResponse(booking)

	require.NotNil(t, res.Hotel)
	assert.Equal(t, "Sea Breeze", res.Hotel.Name)
	assert.Equal(t, "Goa", res.Hotel.City)
	require.NotNil(t, res.Room)
	assert.Equal(t, "Deluxe", res.Room.RoomType)
	assert.Nil(t, res.User)
	assert.Equal(t, "guest", res.CreatedBy)
}

func TestBookingResponse_FromModel_MissingHotel(t *testing.T) {
	res := dto.ToResponse(model.Booking{ID: "booking-1", HotelID: "gone"})

	assert.Nil(t, res.Hotel)
	assert.Nil(t, res.Room)
	assert.Equal(t, "gone", res.HotelID)
}
