package model

import (
	"hotelier/shared/model"
	"time"
)

const (
	TableName  = "newsletters"
	EntityName = "newsletter"

	FieldID           = "id"
	FieldEmail        = "email"
	FieldSubscribed   = "subscribed"
	FieldSubscribedAt = "subscribed_at"
	FieldCreatedAt    = "created_at"
)

const (
	TopicSubscribed   = "newsletter.subscribed"
	TopicUnsubscribed = "newsletter.unsubscribed"
)

// Newsletter is one subscriber. Unsubscribing keeps the row with Subscribed false.
type Newsletter struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Subscribed   bool      `db:"subscribed"`
	SubscribedAt time.Time `db:"subscribed_at"`
	model.Metadata
}
