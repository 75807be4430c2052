package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	resp := NewPaginatedResponse([]string{"a"}, 25, params)

	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)
}

func TestPaginationHelpers(t *testing.T) {
	params := DefaultPagination()
	assert.Equal(t, int64(0), params.GetSkip())
	assert.Equal(t, -1, params.GetSortOrder())

	params.Page = 3
	params.Limit = 5
	params.Order = "asc"
	assert.Equal(t, int64(10), params.GetSkip())
	assert.Equal(t, 1, params.GetSortOrder())
}
