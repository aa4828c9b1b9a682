package model_test

import (
	"hotelier/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from model.Status
		to   model.Status
		want bool
	}{
		{from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{from: model.StatusPending, to: model.StatusCancelled, want: true},
		{from: model.StatusPending, to: model.StatusCompleted, want: false},
		{from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
		{from: model.StatusCancelled, to: model.StatusCancelled, want: true},
		{from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{from: model.StatusCompleted, to: model.StatusCompleted, want: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, model.StatusPending.Valid())
	assert.True(t, model.StatusCompleted.Valid())
	assert.False(t, model.Status("bogus").Valid())
	assert.False(t, model.Status("").Valid())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, model.PaymentPayAtHotel.Valid())
	assert.True(t, model.PaymentUPI.Valid())
	assert.False(t, model.PaymentMethod("Cash").Valid())
}

func TestBooking_JoinQuery(t *testing.T) {
	query := model.Booking{}.JoinQuery()

	assert.Contains(t, query, "LEFT JOIN hotels ON hotels.id = bookings.hotel_id")
	assert.Contains(t, query, "LEFT JOIN rooms ON rooms.id = bookings.room_id")
	assert.Contains(t, query, "LEFT JOIN users ON users.id = bookings.user_id")
}
