package model_test

import (
	"hotelier/internal/domains/user/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, model.RoleUser.Valid())
	assert.True(t, model.RoleHotelOwner.Valid())
	assert.True(t, model.RoleAdmin.Valid())
	assert.False(t, model.Role("owner").Valid())
	assert.False(t, model.Role("").Valid())
}

func TestDefaultUsername(t *testing.T) {
	tests := []struct {
		first, last, expected string
	}{
		{first: "Asha", last: "Rao", expected: "asharao"},
		{first: "Mary Ann", last: "O Neil", expected: "maryannoneil"},
		{first: "", last: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, model.DefaultUsername(tt.first, tt.last))
	}
}
