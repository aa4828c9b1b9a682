package dto_test

import (
	"hotelier/internal/domains/auth/model"
	"hotelier/internal/domains/auth/model/dto"
	userModel "hotelier/internal/domains/user/model"
	"hotelier/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_ToModels(t *testing.T) {
	req := dto.RegisterRequest{
		Email:     "asha@example.com",
		Password:  "secret1",
		FirstName: "Asha",
		LastName:  "Rao",
	}

	user, credential := req.ToModels("guest", "$2a$10$hash")

	assert.Equal(t, "asharao", user.Username)
	assert.Equal(t, userModel.RoleUser, user.Role)
	assert.True(t, strings.HasPrefix(user.ExternalID, userModel.LocalExternalIDPrefix))

	assert.Equal(t, user.ID, credential.UserID)
	assert.Equal(t, model.ProviderLocal, credential.Provider)
	assert.Equal(t, "$2a$10$hash", credential.PasswordHash)
	assert.Equal(t, "asha@example.com", credential.Email)
}

func TestRegisterRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid",
			body: `{"email":" Asha@Example.com ","password":"secret1","firstName":"Asha","lastName":"Rao"}`,
		},
		{
			name:    "short password",
			body:    `{"email":"asha@example.com","password":"abc","firstName":"Asha","lastName":"Rao"}`,
			wantErr: "password must be greater than or equal to 6",
		},
		{
			name:    "unknown role",
			body:    `{"email":"asha@example.com","password":"secret1","firstName":"Asha","lastName":"Rao","role":"root"}`,
			wantErr: "role has an unsupported value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.RegisterRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "asha@example.com", req.Email)
		})
	}
}
