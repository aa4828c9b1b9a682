package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Newsletter=MockNewsletterService

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/newsletter/model"
	"hotelier/internal/domains/newsletter/model/dto"
	"hotelier/internal/domains/newsletter/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gRepo "hotelier/shared/repository"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

var sortable = []string{model.FieldEmail, model.FieldSubscribedAt, model.FieldCreatedAt}

var errAlreadySubscribed = failure.BadRequestFromString("Already subscribed")

type Newsletter interface {
	Subscribe(ctx context.Context, req dto.SubscriptionRequest) (created bool, err error)
	Unsubscribe(ctx context.Context, req dto.SubscriptionRequest) error
	Create(ctx context.Context, req dto.CreateSubscriberRequest) (dto.NewsletterResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.NewsletterResponse], error)
	Get(ctx context.Context, id string) (dto.NewsletterResponse, error)
	Update(ctx context.Context, req dto.UpdateSubscriberRequest, id string) (dto.NewsletterResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Newsletter
	cfg       *config.Config
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(repo repository.Newsletter, cfg *config.Config, otel otel.Otel, publisher kafka.Publisher) Newsletter {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

func SearchFilter(search string) gDto.FilterGroup {
	return gDto.SearchFilter(search, model.TableName, model.FieldEmail)
}

// Subscribe reports created when a new subscriber row was inserted, and false when a
// previously unsubscribed address was switched back on.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscriptionRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriber")

		return false, failure.Internal("Failed to subscribe", err)
	}

	actor := shared.Actor(ctx)

	switch {
	case current.ID == constant.Empty:
		subscriber := (&dto.CreateSubscriberRequest{Email: req.Email}).ToModel(actor)

		if err = s.repo.Insert(ctx, subscriber); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return false, errAlreadySubscribed
			}

			log.Error().Err(err).Msg("failed to insert subscriber")

			return false, failure.Internal("Failed to subscribe", err)
		}

		created = true
	case current.Subscribed:
		return false, errAlreadySubscribed
	default:
		on := true
		update := dto.UpdateSubscriberRequest{Subscribed: &on}

		if err = s.repo.Update(ctx, update.ToFields(actor), shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to resubscribe")

			return false, failure.Internal("Failed to subscribe", err)
		}
	}

	s.publish(ctx, model.TopicSubscribed, req.Email)

	return created, nil
}

// Unsubscribe clears the flag and keeps the row. Repeating it succeeds.
func (s *serviceImpl) Unsubscribe(ctx context.Context, req dto.SubscriptionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unsubscribe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.EmailFilter(req.Email)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if subscriber exists")

		return failure.Internal("Failed to unsubscribe", err)
	}

	if !exist {
		return failure.NotFound("Subscription not found") // nolint:wrapcheck
	}

	off := false
	update := dto.UpdateSubscriberRequest{Subscribed: &off}

	if err = s.repo.Update(ctx, update.ToFields(shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to unsubscribe")

		return failure.Internal("Failed to unsubscribe", err)
	}

	s.publish(ctx, model.TopicUnsubscribed, req.Email)

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSubscriberRequest) (res dto.NewsletterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	subscriber := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, subscriber); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("Subscriber already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create subscriber")

		return res, failure.Internal("Failed to create subscriber", err)
	}

	return dto.ToResponse(subscriber), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[dto.NewsletterResponse], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(model.TableName, model.FieldSubscribedAt, sortable...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscribers")

		return res, failure.Internal("Failed to fetch subscribers", err)
	}

	subscribers, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscribers")

		return res, failure.Internal("Failed to fetch subscribers", err)
	}

	return gDto.MapPage(subscribers, total, params, dto.ToResponse), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NewsletterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	subscriber, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriber")

		return res, failure.Internal("Failed to fetch subscriber", err)
	}

	if subscriber.ID == constant.Empty {
		return res, failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	return dto.ToResponse(subscriber), nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSubscriberRequest, id string) (res dto.NewsletterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return res, failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	fields := req.ToFields(shared.Actor(ctx))
	if !shared.HasChanges(fields) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if subscriber exists")

		return res, failure.Internal("Failed to update subscriber", err)
	}

	if !exist {
		return res, failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("Subscriber already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update subscriber")

		return res, failure.Internal("Failed to update subscriber", err)
	}

	subscriber, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriber")

		return res, failure.Internal("Failed to update subscriber", fmt.Errorf("failed to reload subscriber: %w", err))
	}

	return dto.ToResponse(subscriber), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !shared.ValidID(id) {
		return failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if subscriber exists")

		return failure.Internal("Failed to delete subscriber", err)
	}

	if !exist {
		return failure.NotFound("Subscriber not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete subscriber")

		return failure.Internal("Failed to delete subscriber", err)
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, topic, email string) {
	event := kafka.Message{
		Key:   email,
		Value: map[string]any{"email": email, "at": timezone.Now()},
	}

	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish newsletter event")
	}
}
