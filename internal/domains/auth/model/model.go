package model

import "hotelier/shared/model"

const (
	TableName  = "auth_credentials"
	EntityName = "auth"

	FieldID     = "id"
	FieldEmail  = "email"
	FieldUserID = "user_id"
)

const TopicUserRegistered = "user.registered"

type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

// Credential is how one user signs in. Local credentials carry a bcrypt hash.
type Credential struct {
	ID           string   `db:"id"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Provider     Provider `db:"provider"`
	ProviderID   string   `db:"provider_id"`
	UserID       string   `db:"user_id"`
	model.Metadata
}
