package utils

import "fmt"

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Page is the envelope returned by paginated listings.
type Page struct {
	TotalItems  int64       `json:"total_items"`
	TotalPages  int         `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
	PageSize    int         `json:"page_size"`
	Next        *string     `json:"next"`
	Previous    *string     `json:"previous"`
	Results     interface{} `json:"results"`
}

// ClampPageSize bounds a requested page size to [1, MaxPageSize], falling back
// to the default when the request carries nothing usable.
func ClampPageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages reports the page count for a result set. An empty set still has
// one (empty) page.
func TotalPages(totalItems int64, pageSize int) int {
	pages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		pages = 1
	}
	return pages
}

// NewPage assembles the envelope, including next/previous links relative to
// baseURL.
func NewPage(baseURL string, page, pageSize int, totalItems int64, results interface{}) Page {
	totalPages := TotalPages(totalItems, pageSize)

	var next, previous *string
	if page < totalPages {
		link := fmt.Sprintf("%s?page=%d&page_size=%d", baseURL, page+1, pageSize)
		next = &link
	}
	if page > 1 {
		link := fmt.Sprintf("%s?page=%d&page_size=%d", baseURL, page-1, pageSize)
		previous = &link
	}

	return Page{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		Next:        next,
		Previous:    previous,
		Results:     results,
	}
}
