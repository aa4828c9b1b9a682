package room

import (
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Room, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", handler.GetRooms)
		r.Post("/", handler.CreateRoom)
		r.Get("/{id}", handler.GetRoom)
		r.Put("/{id}", handler.UpdateRoom)
		r.Delete("/{id}", handler.DeleteRoom)
		r.Post("/{id}/images", handler.UploadRoomImage)
	})
}

// PublicRouter registers the guest routes relative to the /hotels prefix.
func (handler *Handler) PublicRouter(r chi.Router) {
	r.Get("/{id}/rooms", handler.GetAvailableRooms)
}

// CreateRoom adds a room to an existing hotel.
// @Summary Create room
// @Tags Admin Rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Hotel not found"
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms [post]
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if handler.cfg.App.SanitizeInput {
		req.Sanitize()
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists rooms, optionally within one hotel.
// @Summary List rooms
// @Tags Admin Rooms
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Room type, bed type or description substring"
// @Param hotelId query string false "Hotel ID"
// @Success 200 {object} gDto.Page[dto.RoomResponse]
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	filter := service.ListFilter(params.Search, r.URL.Query().Get(constant.RequestParamHotelID))

	rooms, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom returns one room with its hotel summary.
// @Summary Get room
// @Tags Admin Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id} [get]
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom edits a room.
// @Summary Update room
// @Tags Admin Rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id} [put]
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if handler.cfg.App.SanitizeInput {
		req.Sanitize()
	}

	room, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom removes a room and its stored images.
// @Summary Delete room
// @Tags Admin Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id} [delete]
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// UploadRoomImage stores a PNG or JPEG of at most 2 MB and appends its URL to the room.
// @Summary Upload room image
// @Tags Admin Rooms
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param image formData file true "PNG or JPEG, 2 MB max"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/rooms/{id}/images [post]
func (handler *Handler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	_, header, err := r.FormFile(constant.FormFileImage)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequestFromString("image is required"))

		return
	}

	req := dto.UploadImageRequest{Image: header}
	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetAvailableRooms lists the bookable rooms of a hotel.
// @Summary Available rooms
// @Tags Hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} dto.RoomResponse
// @Failure 404 {object} response.Error "Hotel not found"
// @Failure 500 {object} response.Error
// @Router /api/hotels/{id}/rooms [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms, err := handler.service.GetAvailableByHotel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}
