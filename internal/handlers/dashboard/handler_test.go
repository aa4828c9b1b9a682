package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	dashboardMocks "hotelier/internal/domains/dashboard/mocks"
	"hotelier/internal/domains/dashboard/model/dto"
	"hotelier/internal/handlers/dashboard"
	"hotelier/shared/failure"
)

func TestHandler_GetStats(t *testing.T) {
	tests := []struct {
		name     string
		stats    dto.StatsResponse
		err      error
		wantCode int
		wantBody string
	}{
		{
			name: "stats",
			stats: dto.StatsResponse{
				TotalUsers: 2, TotalBookings: 1, TotalHotels: 1, TotalRevenue: 1500, TotalSubscribers: 4,
				RecentActivity: []dto.Activity{{Message: "New booking at Sea View", Time: "2024-03-11"}},
			},
			wantCode: http.StatusOK,
			wantBody: `{"totalUsers":2,"totalBookings":1,"totalHotels":1,"totalRevenue":1500,"totalSubscribers":4,` +
				`"recentActivity":[{"message":"New booking at Sea View","time":"2024-03-11"}]}`,
		},
		{
			name:     "failure",
			err:      failure.Internal("Failed to fetch dashboard stats", errors.New("db")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch dashboard stats"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := dashboardMocks.NewMockDashboardService(gomock.NewController(t))
			svc.EXPECT().Stats(gomock.Any()).Return(tt.stats, tt.err)

			handler := dashboard.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
