package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepository "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gRepo "hotelier/shared/repository"

	"github.com/rs/zerolog/log"
)

var sortable = []string{
	model.FieldBookingDate,
	model.FieldCheckInDate,
	model.FieldCheckOutDate,
	model.FieldTotalPrice,
	model.FieldStatus,
	model.FieldCreatedAt,
}

var searchable = []string{model.FieldUserEmail, model.FieldUserName}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.BookingResponse], error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	hotelRepo hotelRepository.Hotel
	roomRepo  roomRepository.Room
	cfg       *config.Config
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(repo repository.Booking, hotelRepo hotelRepository.Hotel, roomRepo roomRepository.Room, cfg *config.Config, otel otel.Otel, publisher kafka.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// SearchFilter matches the guest email or name.
func SearchFilter(search string) gDto.FilterGroup {
	return gDto.SearchFilter(search, model.TableName, searchable...)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel(shared.Actor(ctx))
	if err != nil {
		return res, err
	}

	if !shared.ValidID(req.HotelID) {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	if !shared.ValidID(req.RoomID) {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	hotelExists, err := s.hotelRepo.ExistsByID(ctx, req.HotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, failure.Internal("Failed to create booking", err)
	}

	if !hotelExists {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, failure.Internal("Failed to create booking", err)
	}

	if !roomExists {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		if gRepo.IsCheckViolation(err) {
			return res, dto.ErrStayOrder
		}

		return res, failure.Internal("Failed to create booking", err)
	}

	res, err = s.find(ctx, booking.ID)
	if err != nil {
		return res, failure.Internal("Failed to create booking", err)
	}

	s.publish(ctx, model.TopicCreated, res.ID, res)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.BookingResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(model.TableName, model.FieldBookingDate, sortable...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, failure.Internal("Failed to fetch bookings", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.Internal("Failed to fetch bookings", err)
	}

	return gDto.MapPage(models, total, params, dto.ToResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to fetch booking", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	fields, err := req.ToFields(shared.Actor(ctx))
	if err != nil {
		return res, err
	}

	if !shared.HasChanges(fields) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, failure.Internal("Failed to update booking", err)
	}

	if !exist {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		if gRepo.IsCheckViolation(err) {
			return res, dto.ErrStayOrder
		}

		return res, failure.Internal("Failed to update booking", err)
	}

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to update booking", err)
	}

	return res, nil
}

// UpdateStatus moves a booking along the status transition table. Repeating the current
// status succeeds without a write.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if !req.Status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", req.Status)) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, failure.Internal("Failed to update booking status", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if !current.Status.CanTransitionTo(req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot change status from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
	}

	if current.Status == req.Status {
		return dto.ToResponse(current), nil
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, failure.Internal("Failed to update booking status", err)
	}

	scope.AddEvent(model.TopicStatusChanged, map[string]any{
		"booking.status.from": string(current.Status),
		"booking.status.to":   string(req.Status),
	})

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to update booking status", err)
	}

	s.publish(ctx, model.TopicStatusChanged, id, statusChanged{
		ID:   id,
		From: current.Status,
		To:   req.Status,
	})

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return failure.Internal("Failed to delete booking", err)
	}

	if !exist {
		return failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return failure.Internal("Failed to delete booking", err)
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, nil
	}

	return dto.ToResponse(booking), nil
}

type statusChanged struct {
	ID   string       `json:"id"`
	From model.Status `json:"from"`
	To   model.Status `json:"to"`
}

func (s *serviceImpl) publish(ctx context.Context, topic, key string, value any) {
	if err := s.publisher.Publish(ctx, topic, kafka.Message{Key: key, Value: value}); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish booking event")
	}
}
