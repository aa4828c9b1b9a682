package dto

import (
	"hotelier/internal/domains/user/model"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateUserRequest struct {
	Email                string     `json:"email"                validate:"required,email,max=255"`
	FirstName            string     `json:"firstName"            validate:"required,max=100"`
	LastName             string     `json:"lastName"             validate:"omitempty,max=100"`
	Username             string     `json:"username"             validate:"omitempty,max=100"`
	Role                 model.Role `json:"role"                 validate:"omitempty,enum"`
	ExternalID           string     `json:"externalId"           validate:"omitempty,max=255"`
	ProfileImageURL      string     `json:"profileImageUrl"      validate:"omitempty,url"`
	PhoneNumber          string     `json:"phoneNumber"          validate:"omitempty,max=32"`
	RecentSearchedCities []string   `json:"recentSearchedCities" validate:"omitempty,dive,max=100"`
}

func (c *CreateUserRequest) Normalize() {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
}

// ToModel applies the account defaults: role user, a local external id and a username
// derived from the name.
func (c *CreateUserRequest) ToModel(actor string) model.User {
	user := model.User{
		ID:                   uuid.NewString(),
		Email:                c.Email,
		FirstName:            c.FirstName,
		LastName:             c.LastName,
		Username:             c.Username,
		Role:                 c.Role,
		ExternalID:           c.ExternalID,
		ProfileImageURL:      c.ProfileImageURL,
		PhoneNumber:          c.PhoneNumber,
		RecentSearchedCities: pq.StringArray(c.RecentSearchedCities),
		Metadata:             gModel.NewMetadata(actor, timezone.Now()),
	}

	if user.Role == "" {
		user.Role = model.RoleUser
	}

	if user.ExternalID == "" {
		user.ExternalID = model.LocalExternalIDPrefix + uuid.NewString()
	}

	if user.Username == "" {
		user.Username = model.DefaultUsername(user.FirstName, user.LastName)
	}

	if user.RecentSearchedCities == nil {
		user.RecentSearchedCities = pq.StringArray{}
	}

	return user
}

type UpdateUserRequest struct {
	Email                string         `db:"email"                  json:"email"                validate:"omitempty,email,max=255"`
	FirstName            string         `db:"first_name"             json:"firstName"            validate:"omitempty,max=100"`
	LastName             string         `db:"last_name"              json:"lastName"             validate:"omitempty,max=100"`
	Username             string         `db:"username"               json:"username"             validate:"omitempty,max=100"`
	Role                 model.Role     `db:"role"                   json:"role"                 validate:"omitempty,enum"`
	ProfileImageURL      string         `db:"profile_image_url"      json:"profileImageUrl"      validate:"omitempty,url"`
	PhoneNumber          string         `db:"phone_number"           json:"phoneNumber"          validate:"omitempty,max=32"`
	RecentSearchedCities pq.StringArray `db:"recent_searched_cities" json:"recentSearchedCities" validate:"omitempty,dive,max=100"`
}

func (u *UpdateUserRequest) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

type UserResponse struct {
	ID                   string     `json:"id"`
	Email                string     `json:"email"`
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Username             string     `json:"username"`
	Role                 model.Role `json:"role"`
	ExternalID           string     `json:"externalId"`
	ProfileImageURL      string     `json:"profileImageUrl"`
	PhoneNumber          string     `json:"phoneNumber"`
	RecentSearchedCities []string   `json:"recentSearchedCities"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Email = m.Email
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Username = m.Username
	r.Role = m.Role
	r.ExternalID = m.ExternalID
	r.ProfileImageURL = m.ProfileImageURL
	r.PhoneNumber = m.PhoneNumber
	r.RecentSearchedCities = m.RecentSearchedCities
	r.Metadata.FromModel(m.Metadata)

	if r.RecentSearchedCities == nil {
		r.RecentSearchedCities = []string{}
	}
}

func ToResponse(m model.User) UserResponse {
	var res UserResponse
	res.FromModel(m)

	return res
}

// Summary is the public identity returned by register and login.
type Summary struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Role      model.Role `json:"role"`
}

func ToSummary(m model.User) Summary {
	return Summary{
		ID:        m.ID,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Role:      m.Role,
	}
}
