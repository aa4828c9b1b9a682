package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Revenue(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// RevenueFilter matches bookings whose total price counts as revenue.
func RevenueFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.RevenueStatuses,
				Table:    model.TableName,
			},
		},
	}
}

// Revenue sums total_price over confirmed and completed bookings. No rows sum to 0.
func (r *repositoryImpl) Revenue(ctx context.Context) (float64, error) {
	total, err := r.Sum(ctx, model.FieldTotalPrice, RevenueFilter())
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return total, nil
}

// Recent returns the latest bookings by booking date with hotel names expanded.
func (r *repositoryImpl) Recent(ctx context.Context, limit int) ([]model.Booking, error) {
	params := gDto.QueryParams{Page: 1, Limit: limit}
	params.ApplySort(model.TableName, model.FieldBookingDate)

	bookings, err := r.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return bookings, nil
}
