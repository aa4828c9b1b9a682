package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/s3"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom    = constant.CacheRoom + ":get_all"
	cacheGetRoom       = constant.CacheRoom + ":get"
	cacheAvailableRoom = constant.CacheRoom + ":available"
)

var sortable = []string{
	model.FieldRoomType,
	model.FieldPricePerNight,
	model.FieldCapacity,
	model.FieldCreatedAt,
}

var searchable = []string{model.FieldRoomType, model.FieldBedType, model.FieldDescription}

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.RoomResponse], error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.RoomResponse, error)
	GetAvailableByHotel(ctx context.Context, hotelID string) ([]dto.RoomResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	hotelRepo hotelRepository.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Room, hotelRepo hotelRepository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

// ListFilter matches search against type, bed type and description, optionally within one hotel.
// A hotelID that is not a UUID matches no rooms.
func ListFilter(search, hotelID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{}
	filter.Add(gDto.SearchFilter(search, model.TableName, searchable...))

	if hotelID != "" && !shared.ValidID(hotelID) {
		filter.Add(gDto.Filter{Field: model.FieldHotelID, Operator: gDto.FilterOperatorIn, Value: []string{}, Table: model.TableName})

		return filter
	}

	filter.Add(gDto.OptionalEq(model.FieldHotelID, model.TableName, hotelID))

	return filter
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.requireHotel(ctx, req.HotelID); err != nil {
		return res, err
	}

	room := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, failure.Internal("Failed to create room", err)
	}

	s.invalidate(ctx)

	res, err = s.find(ctx, room.ID)
	if err != nil {
		return res, failure.Internal("Failed to create room", err)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.RoomResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(model.TableName, model.FieldCreatedAt, sortable...)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, failure.Internal("Failed to fetch rooms", err)
	}

	rooms, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, failure.Internal("Failed to fetch rooms", err)
	}

	res = gDto.MapPage(rooms, total, params, dto.ToResponse)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to fetch room", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, shared.Actor(ctx))
	if !shared.HasChanges(fields) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, failure.Internal("Failed to update room", err)
	}

	if !exist {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return res, failure.Internal("Failed to update room", err)
	}

	s.invalidate(ctx)

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to update room", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return failure.NotFound("Room not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImages)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return failure.Internal("Failed to delete room", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("Room not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return failure.Internal("Failed to delete room", err)
	}

	s.invalidate(ctx)

	s3.DeleteByURLs(ctx, s.s3, room.Images...)

	return nil
}

// UploadImage stores the image under the room's directory and appends its public URL to
// the room. The object is removed again if the room cannot be updated.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImages)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, failure.Internal("Failed to upload room image", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	file, err := req.Image.Open()
	if err != nil {
		return res, failure.BadRequest(fmt.Errorf("failed to read image: %w", err)) // nolint:wrapcheck
	}
	defer file.Close()

	directory := path.Join(s.cfg.External.S3.RoomDirectory, id)
	fileName := uuid.NewString() + strings.ToLower(path.Ext(req.Image.Filename))
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	url, err := s.s3.UploadFile(ctx, directory, fileName, contentType, file)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return res, failure.Internal("Failed to upload room image", err)
	}

	images := append(pq.StringArray{}, room.Images...)
	fields := shared.TransformFields(dto.UpdateRoomRequest{Images: append(images, url)}, shared.Actor(ctx))

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to attach room image")

		s3.DeleteByURLs(ctx, s.s3, url)

		return res, failure.Internal("Failed to upload room image", err)
	}

	s.invalidate(ctx)

	res, err = s.find(ctx, id)
	if err != nil {
		return res, failure.Internal("Failed to upload room image", err)
	}

	return res, nil
}

// GetAvailableByHotel lists the bookable rooms of a hotel, each with the hotel's name and city.
func (s *serviceImpl) GetAvailableByHotel(ctx context.Context, hotelID string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailableByHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheAvailableRoom, hotelID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for available rooms")

		return res, nil
	}

	if err = s.requireHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.repo.ListByHotel(ctx, hotelID, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available rooms")

		return nil, failure.Internal("Failed to fetch rooms", err)
	}

	res = dto.ToResponses(rooms)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) requireHotel(ctx context.Context, hotelID string) error {
	if !shared.ValidID(hotelID) {
		return failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	exist, err := s.hotelRepo.ExistsByID(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return failure.Internal("Failed to fetch hotel", err)
	}

	if !exist {
		return failure.NotFound("Hotel not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, nil
	}

	return dto.ToResponse(room), nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save room to cache")
	}
}

// invalidate drops room and hotel entries together; hotel details embed their rooms.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CacheHotel+":", constant.CacheRoom+":")
}
