package dto_test

import (
	"hotelier/shared/constant"
	"hotelier/shared/dto"
	"hotelier/shared/model"
	"math"
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin",
		ModifiedBy: "guest",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	// Compare instants; the app timezone may shift the rendered offset.
	gotCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	if err != nil || !gotCreated.Equal(createdAt) {
		t.Errorf("expected CreatedAt to represent %s, got %s", createdAt, metadata.CreatedAt)
	}

	gotModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	if err != nil || !gotModified.Equal(modifiedAt) {
		t.Errorf("expected ModifiedAt to represent %s, got %s", modifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "admin" {
		t.Errorf("expected CreatedBy to be 'admin', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "guest" {
		t.Errorf("expected ModifiedBy to be 'guest', got %s", metadata.ModifiedBy)
	}
}

func newRequest(t *testing.T, params map[string]string) *http.Request {
	t.Helper()

	u, err := url.Parse("http://example.com/api/admin/users")
	if err != nil {
		t.Fatalf("failed to parse URL: %v", err)
	}

	query := u.Query()
	for key, value := range params {
		query.Set(key, value)
	}

	u.RawQuery = query.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	return req
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"search":   "john",
				"sort_by":  "email",
				"sort_dir": "asc",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				Search:  "john",
				SortBy:  "email",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with non-numeric page",
			queryParams:    map[string]string{"page": "abc"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with zero page",
			queryParams:    map[string]string{"page": "0"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with negative limit",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with invalid sort direction",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(newRequest(t, tt.queryParams), tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected int
	}{
		{name: "first page", params: dto.QueryParams{Page: 1, Limit: 10}, expected: 0},
		{name: "third page", params: dto.QueryParams{Page: 3, Limit: 10}, expected: 20},
		{name: "limit of one", params: dto.QueryParams{Page: 5, Limit: 1}, expected: 4},
		{name: "unset", params: dto.QueryParams{}, expected: 0},
		{name: "page far past the end", params: dto.QueryParams{Page: math.MaxInt, Limit: 10}, expected: math.MaxInt},
		{name: "huge limit", params: dto.QueryParams{Page: 3, Limit: math.MaxInt}, expected: math.MaxInt},
		{name: "huge limit first page", params: dto.QueryParams{Page: 1, Limit: math.MaxInt}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Offset(); got != tt.expected {
				t.Errorf("expected offset %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestQueryParams_OffsetFromHugePage(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/?page=9223372036854775807&limit=10", nil)

	var params dto.QueryParams
	params.FromRequest(req, true)

	if got := params.Offset(); got < 0 {
		t.Errorf("expected a non-negative offset, got %d", got)
	}
}

func TestQueryParams_ApplySort(t *testing.T) {
	tests := []struct {
		name        string
		params      dto.QueryParams
		expectedBy  string
		expectedDir string
	}{
		{
			name:        "default when unset",
			params:      dto.QueryParams{},
			expectedBy:  "bookings.booking_date",
			expectedDir: dto.SortDirDesc,
		},
		{
			name:        "whitelisted column keeps direction",
			params:      dto.QueryParams{SortBy: "total_price", SortDir: dto.SortDirAsc},
			expectedBy:  "bookings.total_price",
			expectedDir: dto.SortDirAsc,
		},
		{
			name:        "unknown column falls back",
			params:      dto.QueryParams{SortBy: "1; DROP TABLE bookings", SortDir: dto.SortDirAsc},
			expectedBy:  "bookings.booking_date",
			expectedDir: dto.SortDirDesc,
		},
		{
			name:        "whitelisted column without direction",
			params:      dto.QueryParams{SortBy: "status"},
			expectedBy:  "bookings.status",
			expectedDir: dto.SortDirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.ApplySort("bookings", "booking_date", "booking_date", "total_price", "status")

			if params.SortBy != tt.expectedBy {
				t.Errorf("expected SortBy %s, got %s", tt.expectedBy, params.SortBy)
			}

			if params.SortDir != tt.expectedDir {
				t.Errorf("expected SortDir %s, got %s", tt.expectedDir, params.SortDir)
			}
		})
	}
}
