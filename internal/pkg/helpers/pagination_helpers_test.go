package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		page, size int
	}{
		{"", 1, DefaultPageSize},
		{"?page=3&size=25", 3, 25},
		{"?page=0&size=0", 1, DefaultPageSize},
		{"?page=abc&size=500", 1, DefaultPageSize},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/students"+tt.query, nil)
		p := ParsePaginationParams(c)
		assert.Equal(t, tt.page, p.Page, tt.query)
		assert.Equal(t, tt.size, p.Size, tt.query)
	}
}

func TestPageRequestBounds(t *testing.T) {
	start, end := PageRequest{Page: 2, Size: 3}.Bounds(7)
	assert.Equal(t, 3, start)
	assert.Equal(t, 6, end)

	start, end = PageRequest{Page: 5, Size: 3}.Bounds(7)
	assert.Equal(t, 7, start)
	assert.Equal(t, 7, end)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, info := Paginate(items, PageRequest{Page: 2, Size: 3})
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(7), info.TotalItems)

	last, _ := Paginate(items, PageRequest{Page: 3, Size: 3})
	assert.Equal(t, []int{7}, last)

	beyond, info := Paginate(items, PageRequest{Page: 9, Size: 3})
	assert.Empty(t, beyond)
	assert.Equal(t, 3, info.CurrentPage)

	empty, info := Paginate([]int{}, PageRequest{Page: 1, Size: 10})
	assert.Empty(t, empty)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 1, info.CurrentPage)
}
