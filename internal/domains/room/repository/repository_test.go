package repository_test

import (
	"hotelier/internal/domains/room/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotelFilter(t *testing.T) {
	tests := []struct {
		name          string
		availableOnly bool
		wantWhere     string
		wantArgs      map[string]any
	}{
		{
			name:      "all rooms",
			wantWhere: "(rooms.hotel_id = :hotel_id)",
			wantArgs:  map[string]any{"hotel_id": "h1"},
		},
		{
			name:          "available rooms",
			availableOnly: true,
			wantWhere:     "(rooms.hotel_id = :hotel_id AND rooms.is_available = :is_available)",
			wantArgs:      map[string]any{"hotel_id": "h1", "is_available": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := repository.HotelFilter("h1", tt.availableOnly)

			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
