package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"hotelier/config"
	"hotelier/infras/otel"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepository "hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/dashboard/model/dto"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	newsletterRepository "hotelier/internal/domains/newsletter/repository"
	userRepository "hotelier/internal/domains/user/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const recentActivityLimit = 5

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	userRepo       userRepository.User
	bookingRepo    bookingRepository.Booking
	hotelRepo      hotelRepository.Hotel
	newsletterRepo newsletterRepository.Newsletter
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	userRepo userRepository.User,
	bookingRepo bookingRepository.Booking,
	hotelRepo hotelRepository.Hotel,
	newsletterRepo newsletterRepository.Newsletter,
	cfg *config.Config,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		userRepo:       userRepo,
		bookingRepo:    bookingRepo,
		hotelRepo:      hotelRepo,
		newsletterRepo: newsletterRepo,
		cfg:            cfg,
		otel:           otel,
	}
}

// Stats runs the six dashboard reads concurrently. The first failure cancels the rest.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var recent []bookingModel.Booking

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		res.TotalUsers, err = s.userRepo.Count(gctx, gDto.FilterGroup{})

		return err
	})
	g.Go(func() (err error) {
		res.TotalBookings, err = s.bookingRepo.Count(gctx, gDto.FilterGroup{})

		return err
	})
	g.Go(func() (err error) {
		res.TotalHotels, err = s.hotelRepo.Count(gctx, gDto.FilterGroup{})

		return err
	})
	g.Go(func() (err error) {
		res.TotalSubscribers, err = s.newsletterRepo.Count(gctx, gDto.FilterGroup{})

		return err
	})
	g.Go(func() (err error) {
		res.TotalRevenue, err = s.bookingRepo.Revenue(gctx)

		return err
	})
	g.Go(func() (err error) {
		recent, err = s.bookingRepo.Recent(gctx, recentActivityLimit)

		return err
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to fetch dashboard stats")

		return dto.StatsResponse{}, failure.Internal("Failed to fetch dashboard stats", err)
	}

	res.RecentActivity = make([]dto.Activity, 0, len(recent))
	for _, booking := range recent {
		res.RecentActivity = append(res.RecentActivity, dto.NewActivity(booking))
	}

	return res, nil
}
