package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size <= 0 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	return p
}

// Bounds returns the half-open slice range of the page within total items.
// A page past the end is empty.
func (p PageRequest) Bounds(total int) (start, end int) {
	p = p.normalized()
	start = min((p.Page-1)*p.Size, total)
	end = min(start+p.Size, total)
	return start, end
}

// ParsePaginationParams reads `page` and `size` from the query string.
// Missing or invalid values fall back to the first page of DefaultPageSize.
func ParsePaginationParams(c *gin.Context) PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return PageRequest{Page: page, Size: size}.normalized()
}

// NewPaginationInfo describes the page p of totalItems. An empty collection
// still has one (empty) page, and a page past the end reports the last one.
func NewPaginationInfo(totalItems int64, p PageRequest) dto.PaginationInfo {
	p = p.normalized()
	size := int64(p.Size)

	totalPages := max(int((totalItems+size-1)/size), 1)

	return dto.PaginationInfo{
		CurrentPage: min(p.Page, totalPages),
		TotalPages:  totalPages,
		PageSize:    p.Size,
		TotalItems:  totalItems,
	}
}

// Paginate returns the requested page of items.
func Paginate[T any](items []T, p PageRequest) ([]T, dto.PaginationInfo) {
	start, end := p.Bounds(len(items))
	return items[start:end], NewPaginationInfo(int64(len(items)), p)
}
