package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) Params {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return FromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestFromContextDefaults(t *testing.T) {
	p := paramsFor("")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestFromContextClamping(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"explicit values", "page=3&page_size=25", 3, 25},
		{"size capped at max", "page_size=500", 1, MaxPageSize},
		{"zero page floors to one", "page=0", 1, DefaultPageSize},
		{"negative values", "page=-2&page_size=-5", 1, DefaultPageSize},
		{"garbage values", "page=abc&page_size=xyz", 1, DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paramsFor(tt.query)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
		})
	}
}

func TestOffsetAndLimit(t *testing.T) {
	p := Params{Page: 1, PageSize: 10}
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())

	p = Params{Page: 4, PageSize: 25}
	assert.Equal(t, 75, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{Page: 2, PageSize: 10}, 35)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 4, meta.TotalPages)
	assert.EqualValues(t, 35, meta.TotalItems)
	assert.Equal(t, 10, meta.ItemsPerPage)
	assert.True(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)

	meta = NewMeta(Params{Page: 1, PageSize: 10}, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)

	meta = NewMeta(Params{Page: 4, PageSize: 10}, 35)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}
