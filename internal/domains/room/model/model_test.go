package model_test

import (
	"hotelier/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoom_FormattedPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{price: "1500000", want: "1,500,000"},
		{price: "999", want: "999"},
		{price: "2500.50", want: "2,500.50"},
		{price: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Room{PricePerNight: tt.price}.FormattedPrice())
		})
	}
}
