package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	authMocks "hotelier/internal/domains/auth/mocks"
	"hotelier/internal/domains/auth/model"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/service"
	userMocks "hotelier/internal/domains/user/mocks"
	userModel "hotelier/internal/domains/user/model"
	"hotelier/shared/failure"
	"hotelier/shared/password"
	gRepo "hotelier/shared/repository"
)

type fixture struct {
	userRepo  *userMocks.MockUser
	authRepo  *authMocks.MockAuth
	publisher *kafkaMocks.MockPublisher
	svc       service.Auth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		userRepo:  userMocks.NewMockUser(ctrl),
		authRepo:  authMocks.NewMockAuth(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.userRepo, f.authRepo, &config.Config{}, mocks.NewOtel(), f.publisher)

	return f
}

func runTx(f *fixture) *gomock.Call {
	return f.userRepo.EXPECT().Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn gRepo.TxFunc) error { return fn(nil) })
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{Email: "asha@example.com", Password: "secret1", FirstName: "Asha", LastName: "Rao"}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantErr   string
		wantCode  int
	}{
		{
			name: "registered",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				runTx(f)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.authRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, c model.Credential) error {
						assert.NoError(t, password.Verify("secret1", c.PasswordHash))
						assert.Equal(t, model.ProviderLocal, c.Provider)

						return nil
					})
				f.publisher.EXPECT().Publish(gomock.Any(), model.TopicUserRegistered, gomock.Any()).Return(nil)
			},
		},
		{
			name: "publish failure does not fail registration",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				runTx(f)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.authRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "email already registered",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  "User already exists",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "user row already exists",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				runTx(f)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantErr:  "User already exists",
			wantCode: http.StatusBadRequest,
		},
		{
			name: "credential insert fails",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, nil)
				runTx(f)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.authRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr:  "Failed to register user",
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "exist check fails",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().EmailTaken(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr:  "Failed to register user",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.MessageRegistered, res.Message)
			assert.Equal(t, "asha@example.com", res.User.Email)
			assert.Equal(t, userModel.RoleUser, res.User.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("secret1")
	require.NoError(t, err)

	credential := model.Credential{ID: "cred-1", Email: "asha@example.com", PasswordHash: hash, UserID: "user-1"}
	user := userModel.User{ID: "user-1", Email: "asha@example.com", FirstName: "Asha", Role: userModel.RoleAdmin}

	tests := []struct {
		name      string
		password  string
		setupMock func(f *fixture)
		wantErr   string
		wantCode  int
	}{
		{
			name:     "logged in",
			password: "secret1",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(credential, nil)
				f.userRepo.EXPECT().GetByID(gomock.Any(), credential.UserID).Return(user, nil)
			},
		},
		{
			name:     "unknown email",
			password: "secret1",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(model.Credential{}, nil)
			},
			wantErr:  "Invalid credentials",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			password: "wrong-one",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(credential, nil)
			},
			wantErr:  "Invalid credentials",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "oauth credential without password",
			password: "secret1",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).
					Return(model.Credential{ID: "cred-2", Provider: model.ProviderGoogle, UserID: "user-1"}, nil)
			},
			wantErr:  "Invalid credentials",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "credential store error",
			password: "secret1",
			setupMock: func(f *fixture) {
				f.authRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(model.Credential{}, errors.New("database error"))
			},
			wantErr:  "Failed to login",
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: tt.password})

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.MessageLoggedIn, res.Message)
			assert.Equal(t, "user-1", res.User.ID)
			assert.Equal(t, userModel.RoleAdmin, res.User.Role)
		})
	}
}
