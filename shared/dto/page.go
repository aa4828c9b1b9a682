package dto

import "math"

// Page is the list envelope returned by every admin collection endpoint.
type Page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// NewPage wraps one page of items. Data is never nil so it always encodes as a JSON array.
func NewPage[T any](items []T, total int, params QueryParams) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Data:  items,
		Total: total,
		Page:  params.Page,
		Pages: TotalPages(total, params.Limit),
	}
}

// TotalPages is ceil(total/limit), and 0 when there is nothing to page through.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// MapPage converts every item of a page, keeping the pagination fields.
func MapPage[M, T any](models []M, total int, params QueryParams, convert func(M) T) Page[T] {
	items := make([]T, len(models))
	for i, mod := range models {
		items[i] = convert(mod)
	}

	return NewPage(items, total, params)
}
