package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"errors"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/auth/model"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/repository"
	userDto "hotelier/internal/domains/user/model/dto"
	userRepository "hotelier/internal/domains/user/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const messageInvalidCredentials = "Invalid credentials"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type serviceImpl struct {
	userRepo  userRepository.User
	authRepo  repository.Auth
	cfg       *config.Config
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(
	userRepo userRepository.User,
	authRepo repository.Auth,
	cfg *config.Config,
	otel otel.Otel,
	publisher kafka.Publisher,
) Auth {
	return &serviceImpl{
		userRepo:  userRepo,
		authRepo:  authRepo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.authRepo.EmailTaken(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing credentials")

		return res, failure.Internal("Failed to register user", err)
	}

	if exists {
		return res, failure.Conflict("User already exists") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, failure.Internal("Failed to register user", err)
	}

	user, credential := req.ToModels(shared.Actor(ctx), hash)

	err = s.userRepo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.userRepo.InsertTx(ctx, tx, user); err != nil {
			return err
		}

		return s.authRepo.InsertTx(ctx, tx, credential)
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("User already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to register user")

		return res, failure.Internal("Failed to register user", err)
	}

	summary := userDto.ToSummary(user)

	msg := kafka.Message{Key: user.ID, Value: summary}
	if err := s.publisher.Publish(ctx, model.TopicUserRegistered, msg); err != nil {
		log.Error().Err(err).Str("topic", model.TopicUserRegistered).Msg("failed to publish registration event")
	}

	return dto.AuthResponse{User: summary, Message: dto.MessageRegistered}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	credential, err := s.authRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get credentials")

		return res, failure.Internal("Failed to login", err)
	}

	if credential.ID == constant.Empty || credential.PasswordHash == constant.Empty {
		_ = password.DummyVerify(req.Password)

		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, credential.PasswordHash); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, failure.Internal("Failed to login", err)
	}

	user, err := s.userRepo.GetByID(ctx, credential.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, failure.Internal("Failed to login", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	return dto.AuthResponse{User: userDto.ToSummary(user), Message: dto.MessageLoggedIn}, nil
}
