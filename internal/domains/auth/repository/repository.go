package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/auth/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Auth stores local credentials. Emails are expected lower-cased by the caller.
type Auth interface {
	GetByEmail(ctx context.Context, email string) (model.Credential, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Credential) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Credential]
}

func New(db *postgres.Connection, otel otel.Otel) Auth {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Credential](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func EmailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
		},
	}
}

// GetByEmail returns the zero Credential when nothing is registered under email.
func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.Credential, error) {
	credential, err := r.Get(ctx, EmailFilter(email))
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to get credential: %w", err)
	}

	return credential, nil
}

func (r *repositoryImpl) EmailTaken(ctx context.Context, email string) (bool, error) {
	taken, err := r.Exist(ctx, EmailFilter(email))
	if err != nil {
		return false, fmt.Errorf("failed to check credential email: %w", err)
	}

	return taken, nil
}
