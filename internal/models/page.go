package models

// Page is one window of an ordered result set together with the totals needed
// to render pagination controls.
type Page[T any] struct {
	Items      []T   `json:"items"`
	PageIndex  int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a page result, deriving TotalPages from the item total and
// page size. Items may be empty for a page index past the end.
func NewPage[T any](items []T, pageIndex, pageSize int, totalItems int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := int(totalItems) / pageSize
	if int(totalItems)%pageSize != 0 {
		totalPages++
	}
	return &Page[T]{
		Items:      items,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
