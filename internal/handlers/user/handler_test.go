package user_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	userMocks "hotelier/internal/domains/user/mocks"
	"hotelier/internal/domains/user/model/dto"
	"hotelier/internal/domains/user/service"
	"hotelier/internal/handlers/user"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newRouter(t *testing.T) (*userMocks.MockUserService, http.Handler) {
	t.Helper()

	svc := userMocks.NewMockUserService(gomock.NewController(t))
	handler := user.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetUsers(t *testing.T) {
	svc, router := newRouter(t)

	params := gDto.QueryParams{Page: 2, Limit: 10, Search: "asha"}
	svc.EXPECT().GetAll(gomock.Any(), params, service.SearchFilter("asha")).
		Return(gDto.NewPage([]dto.UserResponse{}, 11, params), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?page=2&search=asha", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":11,"page":2,"pages":2}`, rec.Body.String())
}

func TestHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *userMocks.MockUserService)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"email":"asha@example.com","firstName":"Asha"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.UserResponse{ID: "u-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid role",
			body:     `{"email":"asha@example.com","firstName":"Asha","role":"superuser"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate",
			body: `{"email":"asha@example.com","firstName":"Asha"}`,
			setupMock: func(svc *userMocks.MockUserService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.UserResponse{}, failure.Conflict("User already exists"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetUser(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.UserResponse{}, failure.NotFound("User not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestHandler_UpdateUser(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Update(gomock.Any(), dto.UpdateUserRequest{FirstName: "Asha"}, "u-1").
		Return(dto.UserResponse{ID: "u-1", FirstName: "Asha"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/users/u-1", strings.NewReader(`{"firstName":"Asha"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "deleted", wantCode: http.StatusOK, wantBody: `{"message":"User deleted successfully"}`},
		{name: "missing", err: failure.NotFound("User not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"User not found"}`},
		{name: "store error", err: failure.Internal("Failed to delete user", errors.New("db")), wantCode: http.StatusInternalServerError, wantBody: `{"error":"Failed to delete user"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			svc.EXPECT().Delete(gomock.Any(), "u-1").Return(tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/users/u-1", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
