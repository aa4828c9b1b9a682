package dto

import (
	"hotelier/internal/domains/auth/model"
	userModel "hotelier/internal/domains/user/model"
	userDto "hotelier/internal/domains/user/model/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

const (
	MessageRegistered = "Registration successful"
	MessageLoggedIn   = "Login successful"
)

type RegisterRequest struct {
	Email     string         `json:"email"     validate:"required,email,max=255"`
	Password  string         `json:"password"  validate:"required,min=6,max=72"`
	FirstName string         `json:"firstName" validate:"required,max=100"`
	LastName  string         `json:"lastName"  validate:"required,max=100"`
	Role      userModel.Role `json:"role"      validate:"omitempty,enum"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

// ToModels builds the user row and its local credential.
func (r *RegisterRequest) ToModels(actor, passwordHash string) (userModel.User, model.Credential) {
	user := (&userDto.CreateUserRequest{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}).ToModel(actor)

	credential := model.Credential{
		ID:           uuid.NewString(),
		Email:        r.Email,
		PasswordHash: passwordHash,
		Provider:     model.ProviderLocal,
		UserID:       user.ID,
		Metadata:     gModel.NewMetadata(actor, timezone.Now()),
	}

	return user, credential
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (l *LoginRequest) Normalize() {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
}

type AuthResponse struct {
	User    userDto.Summary `json:"user"`
	Message string          `json:"message"`
}
