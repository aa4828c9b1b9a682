package repository

import (
	"context"
	"errors"
	"fmt"
	"hotelier/infras/otel/mocks"
	"hotelier/shared/dto"
	"hotelier/shared/model"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type lodging struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	OwnerName *string `db:"owner_name" table:"owners" column:"name"`
	Ignored   string  `db:"-"`
	model.Metadata
}

func (lodging) JoinQuery() string {
	return "LEFT JOIN owners ON owners.id = lodgings.owner_id"
}

func TestNewRepository_Columns(t *testing.T) {
	repo := NewRepository[lodging]("lodging", "lodgings", "id", nil, mocks.NewOtel())

	assert.Equal(t, "LEFT JOIN owners ON owners.id = lodgings.owner_id", repo.join)
	assert.Equal(t,
		[]string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"},
		repo.InsertColumns,
	)

	assert.Equal(t, "lodgings.id, owners.name AS owner_name", repo.getSelectQuery("id", "owner_name"))
	assert.Contains(t, repo.getSelectQuery(), "lodgings.created_by")
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[lodging]("lodging", "lodgings", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.SearchFilter("inn", "lodgings", "name"))
	assert.Equal(t, " WHERE (LOWER(lodgings.name) LIKE LOWER(:search_name)) ", where)
	assert.Equal(t, map[string]any{"search_name": "%inn%"}, args)
}

func TestViolationHelpers(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	foreign := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(foreign))
	assert.True(t, IsForeignKeyViolation(foreign))
	assert.False(t, IsCheckViolation(errors.New("boom")))
}
