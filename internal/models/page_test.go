package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name          string
		itemCount     int
		pageIndex     int
		pageSize      int
		totalItems    int64
		expectedPages int
	}{
		{name: "even split", itemCount: 5, pageIndex: 0, pageSize: 5, totalItems: 10, expectedPages: 2},
		{name: "partial last page", itemCount: 2, pageIndex: 1, pageSize: 5, totalItems: 7, expectedPages: 2},
		{name: "empty store", itemCount: 0, pageIndex: 0, pageSize: 5, totalItems: 0, expectedPages: 0},
		{name: "single item", itemCount: 1, pageIndex: 0, pageSize: 5, totalItems: 1, expectedPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]int, tt.itemCount)
			page := NewPage(items, tt.pageIndex, tt.pageSize, tt.totalItems)

			assert.Len(t, page.Items, tt.itemCount)
			assert.Equal(t, tt.pageIndex, page.PageIndex)
			assert.Equal(t, tt.pageSize, page.PageSize)
			assert.Equal(t, tt.totalItems, page.TotalItems)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
		})
	}
}

func TestNewPageNilItems(t *testing.T) {
	page := NewPage[int](nil, 2, 5, 7)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
