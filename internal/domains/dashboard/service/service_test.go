package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/dashboard/model/dto"
	"hotelier/internal/domains/dashboard/service"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	newsletterMocks "hotelier/internal/domains/newsletter/mocks"
	userMocks "hotelier/internal/domains/user/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

type fixture struct {
	userRepo       *userMocks.MockUser
	bookingRepo    *bookingMocks.MockBooking
	hotelRepo      *hotelMocks.MockHotel
	newsletterRepo *newsletterMocks.MockNewsletter
	svc            service.Dashboard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		userRepo:       userMocks.NewMockUser(ctrl),
		bookingRepo:    bookingMocks.NewMockBooking(ctrl),
		hotelRepo:      hotelMocks.NewMockHotel(ctrl),
		newsletterRepo: newsletterMocks.NewMockNewsletter(ctrl),
	}
	f.svc = service.New(f.userRepo, f.bookingRepo, f.hotelRepo, f.newsletterRepo, &config.Config{}, mocks.NewOtel())

	return f
}

func TestDashboardService_Stats(t *testing.T) {
	hotel := "Sea View"
	recent := []bookingModel.Booking{
		{ID: "b-2", HotelName: &hotel, BookingDate: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)},
		{ID: "b-1", BookingDate: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)},
	}

	f := newFixture(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(12, nil)
	f.bookingRepo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(7, nil)
	f.hotelRepo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(3, nil)
	f.newsletterRepo.EXPECT().Count(gomock.Any(), gDto.FilterGroup{}).Return(40, nil)
	f.bookingRepo.EXPECT().Revenue(gomock.Any()).Return(4500.5, nil)
	f.bookingRepo.EXPECT().Recent(gomock.Any(), 5).Return(recent, nil)

	res, err := f.svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{
		TotalUsers:       12,
		TotalBookings:    7,
		TotalHotels:      3,
		TotalRevenue:     4500.5,
		TotalSubscribers: 40,
		RecentActivity: []dto.Activity{
			{Message: "New booking at Sea View", Time: "2024-03-11"},
			{Message: "New booking at Unknown Hotel", Time: "2024-03-10"},
		},
	}, res)
}

func TestDashboardService_Stats_Empty(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.hotelRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.newsletterRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.bookingRepo.EXPECT().Revenue(gomock.Any()).Return(0.0, nil)
	f.bookingRepo.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := f.svc.Stats(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, res.RecentActivity)
	assert.Empty(t, res.RecentActivity)
}

func TestDashboardService_Stats_Failure(t *testing.T) {
	f := newFixture(t)

	f.userRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.hotelRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
	f.newsletterRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.bookingRepo.EXPECT().Revenue(gomock.Any()).Return(10.0, nil)
	f.bookingRepo.EXPECT().Recent(gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := f.svc.Stats(context.Background())

	assert.EqualError(t, err, "Failed to fetch dashboard stats")
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, dto.StatsResponse{}, res)
}
