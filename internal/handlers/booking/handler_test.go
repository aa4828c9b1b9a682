package booking_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/handlers/booking"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newRouter(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.PublicRouter(router)
	router.Route("/admin", handler.Router)

	return svc, router
}

func TestListFilter(t *testing.T) {
	filter := booking.ListFilter("", "")
	where, args := filter.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)

	filter = booking.ListFilter("asha", "pending")
	where, args = filter.GetWhereClause()
	assert.Contains(t, where, "bookings.user_email")
	assert.Contains(t, where, "bookings.status = :status")
	assert.Equal(t, "pending", args["status"])
}

func TestHandler_CreateBooking(t *testing.T) {
	valid := `{"userId":"0b6f2d4e-6c39-4a52-9a51-5d8f0f7a1c11","roomId":"3f1b7c2a-2d4e-4d7b-8a51-6c0e9f2b4d22",` +
		`"hotelId":"9a7e5c3b-1f2d-4e6a-8b9c-0d1e2f3a4b33","checkInDate":"2024-05-01","checkOutDate":"2024-05-03",` +
		`"totalPrice":3000,"userEmail":"asha@example.com"}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{ID: "b-1"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unknown payment method",
			body:     strings.Replace(valid, `"totalPrice"`, `"paymentMethod":"Cash","totalPrice"`, 1),
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room missing",
			body: valid,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.NotFound("Room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	svc, router := newRouter(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	svc.EXPECT().GetAll(gomock.Any(), params, booking.ListFilter("", "confirmed")).
		Return(gDto.NewPage([]dto.BookingResponse{{ID: "b-1"}}, 1, params), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings?status=confirmed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pages":1`)
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
		wantBody  string
	}{
		{
			name: "confirmed",
			body: `{"status":"confirmed"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					UpdateStatus(gomock.Any(), dto.UpdateStatusRequest{Status: model.StatusConfirmed}, "b-1").
					Return(dto.BookingResponse{ID: "b-1", Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "bogus status is rejected",
			body:     `{"status":"bogus"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"status has an unsupported value"}`,
		},
		{
			name: "illegal transition",
			body: `{"status":"pending"}`,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "b-1").
					Return(dto.BookingResponse{}, failure.BadRequestFromString("cannot change status from completed to pending"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"cannot change status from completed to pending"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/admin/bookings/b-1/status", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/bookings/b-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking deleted successfully"}`, rec.Body.String())
}
