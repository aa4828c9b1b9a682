package dto

import (
	"hotelier/shared/constant"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	Search  string `json:"search"   validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// With defaultRequest set, a missing, non-numeric or non-positive page falls back to 1 and limit to 10.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	q.Search = queryParams.Get(constant.RequestParamSearch)

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Offset is the number of rows skipped before the current page. It saturates at math.MaxInt
// instead of wrapping, so an absurd page reads past the end and yields an empty page.
func (q *QueryParams) Offset() int {
	if q.Page <= 0 || q.Limit <= 0 {
		return 0
	}

	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}

	return (q.Page - 1) * q.Limit
}

// ApplySort pins SortBy to a column of table. A client supplied sort_by is kept only when it
// is one of sortable; otherwise defaultSortBy with DESC is used. SortBy never reaches SQL
// without passing this whitelist.
func (q *QueryParams) ApplySort(table, defaultSortBy string, sortable ...string) {
	if q.SortBy == "" || !slices.Contains(sortable, q.SortBy) {
		q.SortBy = defaultSortBy
		q.SortDir = SortDirDesc
	}

	if q.SortDir == "" {
		q.SortDir = SortDirDesc
	}

	if table != "" && !strings.Contains(q.SortBy, ".") {
		q.SortBy = table + "." + q.SortBy
	}
}
