package hotel_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	"hotelier/internal/handlers/hotel"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newRouter(t *testing.T, sanitize bool) (*hotelMocks.MockHotelService, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.SanitizeInput = sanitize

	svc := hotelMocks.NewMockHotelService(gomock.NewController(t))
	handler := hotel.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/admin", handler.Router)
	router.Route("/hotels", handler.PublicRouter)

	return svc, router
}

func TestHandler_CreateHotel(t *testing.T) {
	body := `{"name":"<b>Sea View</b>","address":"1 Beach Rd","contact":"0800","city":"Goa"}`

	tests := []struct {
		name     string
		sanitize bool
		wantName string
	}{
		{name: "markup stripped", sanitize: true, wantName: "Sea View"},
		{name: "sanitizing disabled", sanitize: false, wantName: "<b>Sea View</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t, tt.sanitize)

			svc.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, req dto.CreateHotelRequest) (dto.HotelResponse, error) {
					assert.Equal(t, tt.wantName, req.Name)

					return dto.HotelResponse{ID: "h-1", Name: req.Name}, nil
				})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/hotels", strings.NewReader(body)))

			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func TestHandler_CreateHotel_Invalid(t *testing.T) {
	_, router := newRouter(t, true)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/hotels", strings.NewReader(`{"name":"Sea View"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"address is required"}`, rec.Body.String())
}

func TestHandler_GetHotels(t *testing.T) {
	svc, router := newRouter(t, true)

	params := gDto.QueryParams{Page: 2, Limit: 5, Search: "sea"}
	svc.EXPECT().GetAll(gomock.Any(), params, service.ListFilter("sea", "goa")).
		Return(gDto.NewPage([]dto.HotelResponse{}, 0, params), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/hotels?page=2&limit=5&search=sea&city=goa", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"total":0,"page":2,"pages":0}`, rec.Body.String())
}

func TestHandler_DeleteHotel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "deleted",
			wantCode: http.StatusOK,
			wantBody: `{"message":"Hotel and associated rooms deleted successfully"}`,
		},
		{
			name:     "missing",
			err:      failure.NotFound("Hotel not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Hotel not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t, true)
			svc.EXPECT().Delete(gomock.Any(), "h-1").Return(tt.err)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/hotels/h-1", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_PublicRoutes(t *testing.T) {
	svc, router := newRouter(t, true)

	svc.EXPECT().ListPublic(gomock.Any(), "goa", "sea").Return([]dto.HotelResponse{{ID: "h-1"}}, nil)
	svc.EXPECT().GetPublic(gomock.Any(), "h-1").
		Return(dto.NewDetail(dto.HotelResponse{ID: "h-1"}, nil), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotels?city=goa&search=sea", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hotels/h-1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rooms":[]`)
}
