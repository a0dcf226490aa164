package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNumber(t *testing.T) {
	assert.Equal(t, 1, PageNumber(""))
	assert.Equal(t, 1, PageNumber("abc"))
	assert.Equal(t, 1, PageNumber("0"))
	assert.Equal(t, 1, PageNumber("-3"))
	assert.Equal(t, 5, PageNumber("5"))
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, PageSize(""))
	assert.Equal(t, DefaultPageSize, PageSize("abc"))
	assert.Equal(t, DefaultPageSize, PageSize("0"))
	assert.Equal(t, 50, PageSize("50"))
	assert.Equal(t, MaxPageSize, PageSize("100"))
	assert.Equal(t, MaxPageSize, PageSize("1000"))
}

func TestPaginationMeta(t *testing.T) {
	meta := PaginationMeta(95, 2, 30)
	assert.Equal(t, int64(95), meta["total"])
	assert.Equal(t, 2, meta["currentPage"])
	assert.Equal(t, 4, meta["totalPages"])
	assert.Equal(t, true, meta["hasPrevPage"])
	assert.Equal(t, true, meta["hasNextPage"])

	last := PaginationMeta(95, 4, 30)
	assert.Equal(t, false, last["hasNextPage"])
}
