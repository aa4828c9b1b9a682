package model

import "hotelier/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID        = "id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldContact   = "contact"
	FieldCity      = "city"
	FieldOwnerID   = "owner_id"
	FieldCreatedAt = "created_at"
)

const TopicDeleted = "hotel.deleted"

type Hotel struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Address string  `db:"address"`
	Contact string  `db:"contact"`
	City    string  `db:"city"`
	OwnerID *string `db:"owner_id"`
	model.Metadata

	OwnerFirstName *string `db:"owner_first_name" table:"owners" column:"first_name"`
	OwnerLastName  *string `db:"owner_last_name"  table:"owners" column:"last_name"`
	OwnerUsername  *string `db:"owner_username"   table:"owners" column:"username"`
	OwnerEmail     *string `db:"owner_email"      table:"owners" column:"email"`
}

func (Hotel) JoinQuery() string {
	return "LEFT JOIN users AS owners ON owners.id = hotels.owner_id"
}
