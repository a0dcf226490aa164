package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

// PageNumber parses a page parameter, defaulting to the first page.
func PageNumber(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageSize parses a page_size parameter, clamped to the hard ceiling.
func PageSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Pagination reads the shared page/page_size parameters off a request.
func Pagination(ctx *gin.Context) (page, pageSize, offset int) {
	page = PageNumber(ctx.DefaultQuery("page", "1"))
	pageSize = PageSize(ctx.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	return page, pageSize, (page - 1) * pageSize
}

// PaginationMeta builds the listing metadata envelope.
func PaginationMeta(total int64, page, pageSize int) gin.H {
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return gin.H{
		"total":        total,
		"currentPage":  page,
		"pageSize":     pageSize,
		"totalPages":   totalPages,
		"hasPrevPage":  page > 1,
		"hasNextPage":  page < totalPages,
		"previousPage": page - 1,
		"nextPage":     page + 1,
	}
}
