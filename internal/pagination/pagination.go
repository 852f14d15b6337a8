// Package pagination implements the page-number pagination used by every
// list endpoint: 1-based pages, default size 10, client-overridable up to 100.
package pagination

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds the sanitized page request
type Params struct {
	Page     int
	PageSize int
}

// FromContext reads page and page_size query parameters, clamping them to
// sane values
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// Offset returns the row offset for the page
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the page size
func (p Params) Limit() int {
	return p.PageSize
}

// Meta is the pagination block returned alongside every page
type Meta struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewMeta builds the meta block for a total item count
func NewMeta(p Params, total int64) Meta {
	totalPages := int(math.Ceil(float64(total) / float64(p.PageSize)))
	return Meta{
		CurrentPage:     p.Page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    p.PageSize,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
