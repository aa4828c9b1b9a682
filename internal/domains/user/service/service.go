package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/model/dto"
	"hotelier/internal/domains/user/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gRepo "hotelier/shared/repository"

	"github.com/rs/zerolog/log"
)

var sortable = []string{
	model.FieldEmail,
	model.FieldFirstName,
	model.FieldLastName,
	model.FieldUsername,
	model.FieldRole,
	model.FieldCreatedAt,
}

var searchable = []string{model.FieldEmail, model.FieldFirstName, model.FieldLastName, model.FieldUsername}

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.UserResponse], error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func SearchFilter(search string) gDto.FilterGroup {
	return gDto.SearchFilter(search, model.TableName, searchable...)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("User already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, failure.Internal("Failed to create user", err)
	}

	return dto.ToResponse(user), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.UserResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(model.TableName, model.FieldCreatedAt, sortable...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, failure.Internal("Failed to fetch users", err)
	}

	users, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, failure.Internal("Failed to fetch users", err)
	}

	return gDto.MapPage(users, total, params, dto.ToResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, failure.Internal("Failed to fetch user", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	return dto.ToResponse(user), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))
	if !shared.HasChanges(fields) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, failure.Internal("Failed to update user", err)
	}

	if !exist {
		return res, failure.NotFound("User not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("User already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update user")

		return res, failure.Internal("Failed to update user", err)
	}

	s.invalidateOwners(ctx)

	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, failure.Internal("Failed to update user", err)
	}

	return dto.ToResponse(user), nil
}

// Delete removes the user. Their credentials go with them and hotels they owned lose the owner.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return failure.NotFound("User not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return failure.Internal("Failed to delete user", err)
	}

	if !exist {
		return failure.NotFound("User not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return failure.Internal("Failed to delete user", err)
	}

	s.invalidateOwners(ctx)

	return nil
}

// invalidateOwners drops cached hotels, which embed their owner's name and email.
func (s *serviceImpl) invalidateOwners(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheHotel+":")
}
