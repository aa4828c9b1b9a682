package dto_test

import (
	"encoding/json"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelResponse_FromModel(t *testing.T) {
	ownerID := "0f6c9d3e-8b1a-4c2d-9e3f-4a5b6c7d8e9f"
	first, last, email := "Asha", "Rao", "asha@example.com"

	tests := []struct {
		name      string
		hotel     model.Hotel
		wantOwner *dto.OwnerSummary
	}{
		{
			name: "with owner",
			hotel: model.Hotel{
				ID:             "h1",
				Name:           "Sea Breeze",
				OwnerID:        &ownerID,
				OwnerFirstName: &first,
				OwnerLastName:  &last,
				OwnerEmail:     &email,
			},
			wantOwner: &dto.OwnerSummary{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
		},
		{
			name:  "owner removed",
			hotel: model.Hotel{ID: "h2", Name: "Hill Top"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dto.ToResponse(tt.hotel)

			assert.Equal(t, tt.hotel.ID, res.ID)
			assert.Equal(t, tt.wantOwner, res.Owner)
		})
	}
}

func TestCreateHotelRequest_Sanitize(t *testing.T) {
	req := dto.CreateHotelRequest{
		Name:    "<h1>Grand</h1> Plaza",
		Address: "12 Beach Rd<script>x()</script>",
		Contact: " +91 98765 43210 ",
		City:    "Goa",
	}

	req.Sanitize()

	assert.Equal(t, "Grand Plaza", req.Name)
	assert.Equal(t, "12 Beach Rd", req.Address)
	assert.Equal(t, "+91 98765 43210", req.Contact)
}

func TestNewDetail_RoomsAlwaysArray(t *testing.T) {
	detail := dto.NewDetail(dto.ToResponse(model.Hotel{ID: "h1"}), nil)

	body, err := json.Marshal(detail)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"rooms":[]`)
	assert.Contains(t, string(body), `"id":"h1"`)
}
