package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ListByHotel(ctx context.Context, hotelID string, availableOnly bool) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// HotelFilter matches the rooms of one hotel.
func HotelFilter(hotelID string, availableOnly bool) gDto.FilterGroup {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.Filter{
		Field:    model.FieldHotelID,
		Value:    hotelID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	if availableOnly {
		filter.Add(gDto.Filter{
			Field:    model.FieldIsAvailable,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter
}

// ListByHotel returns every room of a hotel, newest first, unpaginated.
func (r *repositoryImpl) ListByHotel(ctx context.Context, hotelID string, availableOnly bool) ([]model.Room, error) {
	params := gDto.QueryParams{}
	params.ApplySort(model.TableName, model.FieldCreatedAt)

	rooms, err := r.GetAll(ctx, params, HotelFilter(hotelID, availableOnly))
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms of hotel %s: %w", hotelID, err)
	}

	return rooms, nil
}
