package model

import (
	"hotelier/shared/model"
	"strings"

	"github.com/lib/pq"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                   = "id"
	FieldEmail                = "email"
	FieldFirstName            = "first_name"
	FieldLastName             = "last_name"
	FieldUsername             = "username"
	FieldRole                 = "role"
	FieldExternalID           = "external_id"
	FieldProfileImageURL      = "profile_image_url"
	FieldPhoneNumber          = "phone_number"
	FieldRecentSearchedCities = "recent_searched_cities"
	FieldCreatedAt            = "created_at"
)

// LocalExternalIDPrefix marks accounts created through password registration rather than an
// identity provider.
const LocalExternalIDPrefix = "local_"

type Role string

const (
	RoleUser       Role = "user"
	RoleHotelOwner Role = "hotelOwner"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHotelOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID                   string         `db:"id"`
	Email                string         `db:"email"`
	FirstName            string         `db:"first_name"`
	LastName             string         `db:"last_name"`
	Username             string         `db:"username"`
	Role                 Role           `db:"role"`
	ExternalID           string         `db:"external_id"`
	ProfileImageURL      string         `db:"profile_image_url"`
	PhoneNumber          string         `db:"phone_number"`
	RecentSearchedCities pq.StringArray `db:"recent_searched_cities"`
	model.Metadata
}

// DefaultUsername is the lower-cased first and last name run together without spaces.
func DefaultUsername(firstName, lastName string) string {
	return strings.ToLower(strings.Join(strings.Fields(firstName+lastName), ""))
}
