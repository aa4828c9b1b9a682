package newsletter

import (
	"hotelier/infras/otel"
	"hotelier/internal/domains/newsletter/model/dto"
	"hotelier/internal/domains/newsletter/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageSubscribed   = "Subscribed successfully"
	messageResubscribed = "Resubscribed successfully"
	messageUnsubscribed = "Unsubscribed successfully"
)

type Handler struct {
	service service.Newsletter
	otel    otel.Otel
}

func New(service service.Newsletter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/newsletter", func(r chi.Router) {
		r.Get("/", handler.GetSubscribers)
		r.Post("/", handler.CreateSubscriber)
		r.Get("/{id}", handler.GetSubscriber)
		r.Put("/{id}", handler.UpdateSubscriber)
		r.Delete("/{id}", handler.DeleteSubscriber)
	})
}

func (handler *Handler) PublicRouter(r chi.Router) {
	r.Route("/newsletter", func(r chi.Router) {
		r.Post("/subscribe", handler.Subscribe)
		r.Post("/unsubscribe", handler.Unsubscribe)
	})
}

// Subscribe adds an email to the newsletter or reactivates it.
// @Summary Subscribe
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscriptionRequest true "Subscription Request"
// @Success 201 {object} response.Message "Subscribed successfully"
// @Success 200 {object} response.Message "Resubscribed successfully"
// @Failure 400 {object} response.Error "Already subscribed"
// @Failure 500 {object} response.Error
// @Router /api/newsletter/subscribe [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	var req dto.SubscriptionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	created, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if created {
		response.WithMessage(w, http.StatusCreated, messageSubscribed)

		return
	}

	response.WithMessage(w, http.StatusOK, messageResubscribed)
}

// Unsubscribe turns the subscription off and keeps the record.
// @Summary Unsubscribe
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscriptionRequest true "Subscription Request"
// @Success 200 {object} response.Message "Unsubscribed successfully"
// @Failure 404 {object} response.Error "Subscription not found"
// @Failure 500 {object} response.Error
// @Router /api/newsletter/unsubscribe [post]
func (handler *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unsubscribe")
	defer scope.End()

	var req dto.SubscriptionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Unsubscribe(ctx, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, messageUnsubscribed)
}

// GetSubscribers lists subscribers, newest subscription first.
// @Summary List subscribers
// @Tags Admin Newsletter
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Email substring"
// @Success 200 {object} gDto.Page[dto.NewsletterResponse]
// @Failure 500 {object} response.Error
// @Router /api/admin/newsletter [get]
func (handler *Handler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscribers")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	page, err := handler.service.GetAll(ctx, params, service.SearchFilter(params.Search))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscribers")
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, page)
}

// CreateSubscriber adds a subscriber from the admin panel.
// @Summary Create subscriber
// @Tags Admin Newsletter
// @Accept json
// @Produce json
// @Param request body dto.CreateSubscriberRequest true "Create Subscriber Request"
// @Success 201 {object} dto.NewsletterResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/newsletter [post]
func (handler *Handler) CreateSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubscriber")
	defer scope.End()

	var req dto.CreateSubscriberRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	subscriber, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, subscriber)
}

// GetSubscriber returns one subscriber.
// @Summary Get subscriber
// @Tags Admin Newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} dto.NewsletterResponse
// @Failure 404 {object} response.Error
// @Router /api/admin/newsletter/{id} [get]
func (handler *Handler) GetSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriber")
	defer scope.End()

	subscriber, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscriber)
}

// UpdateSubscriber changes the email or the subscribed flag.
// @Summary Update subscriber
// @Tags Admin Newsletter
// @Accept json
// @Produce json
// @Param id path string true "Subscriber ID"
// @Param request body dto.UpdateSubscriberRequest true "Update Subscriber Request"
// @Success 200 {object} dto.NewsletterResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/admin/newsletter/{id} [put]
func (handler *Handler) UpdateSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubscriber")
	defer scope.End()

	var req dto.UpdateSubscriberRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	subscriber, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscriber)
}

// DeleteSubscriber removes the record entirely.
// @Summary Delete subscriber
// @Tags Admin Newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /api/admin/newsletter/{id} [delete]
func (handler *Handler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSubscriber")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Subscriber removed successfully")
}
