package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return GetPaginationParams(e.NewContext(req, rec))
}

func TestGetPaginationParams(t *testing.T) {
	defaults := paramsFor("")
	assert.Equal(t, 1, defaults.Page)
	assert.Equal(t, 20, defaults.PageSize)
	assert.Equal(t, 0, defaults.Offset)

	paged := paramsFor("page=3&limit=10")
	assert.Equal(t, 3, paged.Page)
	assert.Equal(t, 10, paged.PageSize)
	assert.Equal(t, 20, paged.Offset)

	capped := paramsFor("page=-1&limit=500")
	assert.Equal(t, 1, capped.Page)
	assert.Equal(t, 20, capped.PageSize)
}
