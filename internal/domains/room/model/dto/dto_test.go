package dto_test

import (
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	unavailable := false

	tests := []struct {
		name          string
		req           dto.CreateRoomRequest
		wantCapacity  int
		wantBedType   string
		wantAvailable bool
	}{
		{
			name:          "defaults",
			req:           dto.CreateRoomRequest{HotelID: "h1", RoomType: "Deluxe", PricePerNight: "2500"},
			wantCapacity:  model.DefaultCapacity,
			wantBedType:   model.DefaultBedType,
			wantAvailable: true,
		},
		{
			name: "explicit values",
			req: dto.CreateRoomRequest{
				HotelID:       "h1",
				RoomType:      "Suite",
				PricePerNight: "9000",
				Capacity:      4,
				BedType:       "Twin",
				IsAvailable:   &unavailable,
			},
			wantCapacity: 4,
			wantBedType:  "Twin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := tt.req.ToModel("admin")

			assert.NotEmpty(t, room.ID)
			assert.Equal(t, tt.wantCapacity, room.Capacity)
			assert.Equal(t, tt.wantBedType, room.BedType)
			assert.Equal(t, tt.wantAvailable, room.IsAvailable)
			assert.NotNil(t, room.Amenities)
			assert.NotNil(t, room.Images)
			assert.Equal(t, "admin", room.CreatedBy)
		})
	}
}

func TestCreateRoomRequest_Sanitize(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomType:    "<b>Deluxe</b>",
		Description: "Sea view<script>alert(1)</script>",
		Amenities:   []string{"WiFi", "<img src=x>"},
	}

	req.Sanitize()

	assert.Equal(t, "Deluxe", req.RoomType)
	assert.Equal(t, "Sea view", req.Description)
	assert.Equal(t, []string{"WiFi"}, req.Amenities)
}

func TestRoomResponse_FromModel(t *testing.T) {
	hotelName := "Sea Breeze"
	hotelCity := "Goa"

	tests := []struct {
		name      string
		room      model.Room
		wantHotel *dto.HotelSummary
		wantPrice string
	}{
		{
			name: "with hotel",
			room: model.Room{
				ID:            "r1",
				PricePerNight: "1500000",
				Amenities:     pq.StringArray{"WiFi"},
				HotelName:     &hotelName,
				HotelCity:     &hotelCity,
			},
			wantHotel: &dto.HotelSummary{Name: "Sea Breeze", City: "Goa"},
			wantPrice: "1,500,000",
		},
		{
			name:      "without hotel",
			room:      model.Room{ID: "r2", PricePerNight: "900"},
			wantPrice: "900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dto.ToResponse(tt.room)

			assert.Equal(t, tt.wantHotel, res.Hotel)
			assert.Equal(t, tt.wantPrice, res.FormattedPrice)
			assert.NotNil(t, res.Amenities)
			assert.NotNil(t, res.Images)
		})
	}
}

func TestToResponses_Empty(t *testing.T) {
	assert.Equal(t, []dto.RoomResponse{}, dto.ToResponses(nil))
}
