package dto_test

import (
	"encoding/json"
	"hotelier/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no records", total: 0, limit: 10, expected: 0},
		{name: "exact multiple", total: 20, limit: 10, expected: 2},
		{name: "remainder rounds up", total: 21, limit: 10, expected: 3},
		{name: "fewer than one page", total: 3, limit: 10, expected: 1},
		{name: "limit of one", total: 7, limit: 1, expected: 7},
		{name: "invalid limit", total: 7, limit: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dto.TotalPages(tt.total, tt.limit))
		})
	}
}

func TestNewPage_EmptyEncodesAsArray(t *testing.T) {
	page := dto.NewPage[string](nil, 0, dto.QueryParams{Page: 1, Limit: 10})

	raw, err := json.Marshal(page)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"pages":0}`, string(raw))
}

func TestMapPage(t *testing.T) {
	page := dto.MapPage([]int{1, 2, 3}, 13, dto.QueryParams{Page: 2, Limit: 3}, func(v int) int { return v * 10 })

	assert.Equal(t, []int{10, 20, 30}, page.Data)
	assert.Equal(t, 13, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Pages)
	assert.LessOrEqual(t, len(page.Data), 3)
}
