package hotel

import (
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Hotel, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", handler.GetHotels)
		r.Post("/", handler.CreateHotel)
		r.Get("/{id}", handler.GetHotel)
		r.Put("/{id}", handler.UpdateHotel)
		r.Delete("/{id}", handler.DeleteHotel)
	})
}

// PublicRouter registers the guest routes relative to the /hotels prefix.
func (handler *Handler) PublicRouter(r chi.Router) {
	r.Get("/", handler.ListHotels)
	r.Get("/{id}", handler.GetHotelDetail)
}

// CreateHotel registers a hotel.
// @Summary Create hotel
// @Tags Admin Hotels
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} dto.HotelResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/hotels [post]
func (handler *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	var req dto.CreateHotelRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if handler.cfg.App.SanitizeInput {
		req.Sanitize()
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, hotel)
}

// GetHotels lists hotels for the admin panel.
// @Summary List hotels
// @Tags Admin Hotels
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Name, city or address substring"
// @Param city query string false "City substring"
// @Success 200 {object} gDto.Page[dto.HotelResponse]
// @Failure 500 {object} response.Error
// @Router /api/admin/hotels [get]
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	filter := service.ListFilter(params.Search, r.URL.Query().Get(constant.RequestParamCity))

	hotels, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotel returns a hotel with all of its rooms.
// @Summary Get hotel
// @Tags Admin Hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelDetailResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/hotels/{id} [get]
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotel, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

// UpdateHotel edits a hotel.
// @Summary Update hotel
// @Tags Admin Hotels
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} dto.HotelResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/hotels/{id} [put]
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	var req dto.UpdateHotelRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if handler.cfg.App.SanitizeInput {
		req.Sanitize()
	}

	hotel, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}

// DeleteHotel removes a hotel together with its rooms.
// @Summary Delete hotel
// @Tags Admin Hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/hotels/{id} [delete]
func (handler *Handler) DeleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotel and associated rooms deleted successfully")
}

// ListHotels is the guest hotel search.
// @Summary Search hotels
// @Tags Hotels
// @Produce json
// @Param city query string false "City substring"
// @Param search query string false "Name substring"
// @Success 200 {array} dto.HotelResponse
// @Failure 500 {object} response.Error
// @Router /api/hotels [get]
func (handler *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListHotels")
	defer scope.End()

	query := r.URL.Query()

	hotels, err := handler.service.ListPublic(ctx, query.Get(constant.RequestParamCity), query.Get(constant.RequestParamSearch))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelDetail returns a hotel with its bookable rooms.
// @Summary Hotel detail
// @Tags Hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelDetailResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotels/{id} [get]
func (handler *Handler) GetHotelDetail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelDetail")
	defer scope.End()

	hotel, err := handler.service.GetPublic(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hotel)
}
