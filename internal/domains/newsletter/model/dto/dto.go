package dto

import (
	"hotelier/internal/domains/newsletter/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

// SubscriptionRequest is the body of the public subscribe and unsubscribe calls.
type SubscriptionRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (r *SubscriptionRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

type CreateSubscriberRequest struct {
	Email      string `json:"email"      validate:"required,email,max=255"`
	Subscribed *bool  `json:"subscribed"`
}

func (c *CreateSubscriberRequest) Normalize() {
	c.Email = normalizeEmail(c.Email)
}

func (c *CreateSubscriberRequest) ToModel(actor string) model.Newsletter {
	now := timezone.Now()

	subscribed := true
	if c.Subscribed != nil {
		subscribed = *c.Subscribed
	}

	return model.Newsletter{
		ID:           uuid.NewString(),
		Email:        c.Email,
		Subscribed:   subscribed,
		SubscribedAt: now,
		Metadata:     gModel.NewMetadata(actor, now),
	}
}

// UpdateSubscriberRequest edits a subscriber. Subscribed is a pointer so false can be sent.
type UpdateSubscriberRequest struct {
	Email      string `json:"email"      validate:"omitempty,email,max=255"`
	Subscribed *bool  `json:"subscribed"`
}

func (u *UpdateSubscriberRequest) Normalize() {
	u.Email = normalizeEmail(u.Email)
}

// ToFields renders the supplied fields as an UPDATE column map. Turning the subscription
// back on refreshes subscribed_at.
func (u *UpdateSubscriberRequest) ToFields(actor string) map[string]any {
	now := timezone.Now()
	fields := map[string]any{
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor,
	}

	if u.Email != "" {
		fields[model.FieldEmail] = u.Email
	}

	if u.Subscribed != nil {
		fields[model.FieldSubscribed] = *u.Subscribed

		if *u.Subscribed {
			fields[model.FieldSubscribedAt] = now
		}
	}

	return fields
}

type NewsletterResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Subscribed   bool   `json:"subscribed"`
	SubscribedAt string `json:"subscribedAt"`
	gDto.Metadata
}

func (r *NewsletterResponse) FromModel(m model.Newsletter) {
	r.ID = m.ID
	r.Email = m.Email
	r.Subscribed = m.Subscribed
	r.SubscribedAt = timezone.Format(m.SubscribedAt, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

func ToResponse(m model.Newsletter) NewsletterResponse {
	var res NewsletterResponse
	res.FromModel(m)

	return res
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
