package dto_test

import (
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/model/dto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateUserRequest
		wantRole     model.Role
		wantUsername string
		wantExternal string
	}{
		{
			name:         "defaults",
			req:          dto.CreateUserRequest{Email: "asha@example.com", FirstName: "Asha", LastName: "Rao"},
			wantRole:     model.RoleUser,
			wantUsername: "asharao",
		},
		{
			name: "explicit values",
			req: dto.CreateUserRequest{
				Email:      "owner@example.com",
				FirstName:  "Vikram",
				Username:   "vik",
				Role:       model.RoleHotelOwner,
				ExternalID: "user_2abc",
			},
			wantRole:     model.RoleHotelOwner,
			wantUsername: "vik",
			wantExternal: "user_2abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToModel("admin")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, tt.wantUsername, user.Username)
			assert.NotNil(t, user.RecentSearchedCities)

			if tt.wantExternal != "" {
				assert.Equal(t, tt.wantExternal, user.ExternalID)
			} else {
				assert.True(t, strings.HasPrefix(user.ExternalID, model.LocalExternalIDPrefix))
			}
		})
	}
}

func TestUserResponse_FromModel(t *testing.T) {
	res := dto.ToResponse(model.User{ID: "u1", Email: "asha@example.com", Role: model.RoleAdmin})

	assert.Equal(t, "u1", res.ID)
	assert.Equal(t, model.RoleAdmin, res.Role)
	assert.Equal(t, []string{}, res.RecentSearchedCities)
}

func TestToSummary(t *testing.T) {
	summary := dto.ToSummary(model.User{ID: "u1", Email: "asha@example.com", FirstName: "Asha", LastName: "Rao", Role: model.RoleUser})

	assert.Equal(t, dto.Summary{ID: "u1", Email: "asha@example.com", FirstName: "Asha", LastName: "Rao", Role: model.RoleUser}, summary)
}
