package dto_test

import (
	"hotelier/internal/domains/newsletter/model"
	"hotelier/internal/domains/newsletter/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRequest_Normalize(t *testing.T) {
	var req dto.SubscriptionRequest

	err := validator.Validate(strings.NewReader(`{"email":"  Reader@Example.COM "}`), &req)

	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", req.Email)
}

func TestCreateSubscriberRequest_ToModel(t *testing.T) {
	off := false

	tests := []struct {
		name           string
		req            dto.CreateSubscriberRequest
		wantSubscribed bool
	}{
		{name: "subscribed by default", req: dto.CreateSubscriberRequest{Email: "a@example.com"}, wantSubscribed: true},
		{name: "explicitly off", req: dto.CreateSubscriberRequest{Email: "b@example.com", Subscribed: &off}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.req.ToModel("admin")

			assert.NotEmpty(t, m.ID)
			assert.Equal(t, tt.wantSubscribed, m.Subscribed)
			assert.False(t, m.SubscribedAt.IsZero())
		})
	}
}

func TestUpdateSubscriberRequest_ToFields(t *testing.T) {
	on, off := true, false

	tests := []struct {
		name       string
		req        dto.UpdateSubscriberRequest
		wantFields []string
		absent     []string
	}{
		{
			name:       "unsubscribe keeps false",
			req:        dto.UpdateSubscriberRequest{Subscribed: &off},
			wantFields: []string{model.FieldSubscribed},
			absent:     []string{model.FieldSubscribedAt, model.FieldEmail},
		},
		{
			name:       "resubscribe refreshes timestamp",
			req:        dto.UpdateSubscriberRequest{Subscribed: &on},
			wantFields: []string{model.FieldSubscribed, model.FieldSubscribedAt},
		},
		{
			name:       "email only",
			req:        dto.UpdateSubscriberRequest{Email: "c@example.com"},
			wantFields: []string{model.FieldEmail},
			absent:     []string{model.FieldSubscribed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.req.ToFields("admin")

			assert.Contains(t, fields, constant.FieldModifiedAt)

			for _, field := range tt.wantFields {
				assert.Contains(t, fields, field)
			}

			for _, field := range tt.absent {
				assert.NotContains(t, fields, field)
			}
		})
	}
}
