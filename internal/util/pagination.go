package util

import (
	"fmt"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ParsePagination resolves the page/pageSize query parameters. Empty values
// fall back to the defaults; non-numeric or non-positive values are rejected
// so they can be reported as a 400 instead of silently coerced.
func ParsePagination(pageStr, sizeStr string) (page, pageSize int, err error) {
	page = DefaultPage
	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("page must be a positive integer")
		}
	}

	pageSize = DefaultPageSize
	if sizeStr != "" {
		pageSize, err = strconv.Atoi(sizeStr)
		if err != nil || pageSize < 1 {
			return 0, 0, fmt.Errorf("pageSize must be a positive integer")
		}
	}

	return page, pageSize, nil
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

func TotalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
