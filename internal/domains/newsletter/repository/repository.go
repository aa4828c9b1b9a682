package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/newsletter/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Newsletter interface {
	Insert(ctx context.Context, model model.Newsletter) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Newsletter, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Newsletter, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByEmail(ctx context.Context, email string) (model.Newsletter, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Newsletter]
}

func New(db *postgres.Connection, otel otel.Otel) Newsletter {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Newsletter](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// EmailFilter matches one subscriber address. Addresses are stored lower-cased.
func EmailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
		},
	}
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.Newsletter, error) {
	subscriber, err := r.Get(ctx, EmailFilter(email))
	if err != nil {
		return model.Newsletter{}, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return subscriber, nil
}
