package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/s3"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/repository"
	roomDto "hotelier/internal/domains/room/model/dto"
	roomRepository "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gRepo "hotelier/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllHotel = constant.CacheHotel + ":get_all"
	cacheGetHotel    = constant.CacheHotel + ":get"
	cachePublicList  = constant.CacheHotel + ":public_list"
	cachePublicGet   = constant.CacheHotel + ":public_get"
)

var sortable = []string{model.FieldName, model.FieldCity, model.FieldCreatedAt}

var searchable = []string{model.FieldName, model.FieldCity, model.FieldAddress}

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.HotelResponse], error)
	Get(ctx context.Context, id string) (dto.HotelDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (dto.HotelResponse, error)
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, city, search string) ([]dto.HotelResponse, error)
	GetPublic(ctx context.Context, id string) (dto.HotelDetailResponse, error)
}

type serviceImpl struct {
	repo      repository.Hotel
	roomRepo  roomRepository.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher kafka.Publisher
}

func New(
	repo repository.Hotel,
	roomRepo roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	publisher kafka.Publisher,
) Hotel {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
	}
}

// ListFilter matches search against name, city and address, and narrows to city when given.
func ListFilter(search, city string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.SearchFilter(search, model.TableName, searchable...))

	if city != "" {
		filter.Add(gDto.Filter{
			Field:    model.FieldCity,
			Value:    city,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return filter
}

// PublicFilter is the guest-facing search: city substring AND name substring.
func PublicFilter(city, search string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}

	if city != "" {
		filter.Add(gDto.Filter{
			Field:    model.FieldCity,
			Value:    city,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if search != "" {
		filter.Add(gDto.Filter{
			Field:    model.FieldName,
			Value:    search,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return filter
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Msg("failed to create hotel")

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound("Owner not found") // nolint:wrapcheck
		}

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("Hotel already exists") // nolint:wrapcheck
		}

		return res, failure.Internal("Failed to create hotel", err)
	}

	s.invalidate(ctx)

	res, err = s.find(ctx, hotel.ID)
	if err != nil {
		return res, failure.Internal("Failed to create hotel", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.HotelResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(model.TableName, model.FieldCreatedAt, sortable...)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, failure.Internal("Failed to fetch hotels", err)
	}

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, failure.Internal("Failed to fetch hotels", err)
	}

	res = gDto.MapPage(hotels, total, params, dto.ToResponse)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Get is the admin detail: the hotel with every one of its rooms.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	return s.detail(ctx, shared.BuildCacheKey(cacheGetHotel, id), id, false)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))
	if !shared.HasChanges(fields) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, failure.Internal("Failed to update hotel", err)
	}

	if !exist {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.NotFound("Owner not found") // nolint:wrapcheck
		}

		return res, failure.Internal("Failed to update hotel", err)
	}

	s.invalidate(ctx)

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to update hotel", err)
	}

	return res, nil
}

// Delete removes the hotel and all of its rooms in one transaction, then drops the room
// images from object storage.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return failure.Internal("Failed to delete hotel", err)
	}

	if !exist {
		return failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.ListByHotel(ctx, id, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel rooms")

		return failure.Internal("Failed to delete hotel", err)
	}

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.roomRepo.DeleteTx(ctx, tx, roomRepository.HotelFilter(id, false)); err != nil {
			return fmt.Errorf("failed to delete rooms: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete hotel: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotelID", id).Msg("failed to delete hotel")

		return failure.Internal("Failed to delete hotel", err)
	}

	s.invalidate(ctx)

	var images []string
	for _, room := range rooms {
		images = append(images, room.Images...)
	}

	s3.DeleteByURLs(ctx, s.s3, images...)

	if err := s.publisher.Publish(ctx, model.TopicDeleted, kafka.Message{Key: id, Value: map[string]any{"id": id, "rooms": len(rooms)}}); err != nil {
		log.Error().Err(err).Str("topic", model.TopicDeleted).Msg("failed to publish hotel event")
	}

	return nil
}

func (s *serviceImpl) ListPublic(ctx context.Context, city, search string) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPublic")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{}
	params.ApplySort(model.TableName, model.FieldCreatedAt)

	filter := PublicFilter(city, search)
	cacheKey := shared.BuildCacheKeyWithQuery(cachePublicList, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for public hotels")

		return res, nil
	}

	hotels, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, failure.Internal("Failed to fetch hotels", err)
	}

	res = make([]dto.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		res = append(res, dto.ToResponse(hotel))
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

// GetPublic is the guest detail: the hotel with only its available rooms.
func (s *serviceImpl) GetPublic(ctx context.Context, id string) (res dto.HotelDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublic")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	return s.detail(ctx, shared.BuildCacheKey(cachePublicGet, id), id, true)
}

func (s *serviceImpl) detail(ctx context.Context, cacheKey, id string, availableOnly bool) (res dto.HotelDetailResponse, err error) {
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to fetch hotel", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.ListByHotel(ctx, id, availableOnly)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel rooms")

		return res, failure.Internal("Failed to fetch hotel", err)
	}

	res = dto.NewDetail(hotel, roomDto.ToResponses(rooms))

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, nil
	}

	return dto.ToResponse(hotel), nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save hotel to cache")
	}
}

// invalidate drops hotel and room entries together; hotel details embed rooms and room
// responses embed the hotel name.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheHotel+":", constant.CacheRoom+":")
}
