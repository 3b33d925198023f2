package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPageSize(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero falls back to default", 0, DefaultPageSize},
		{"negative falls back to default", -3, DefaultPageSize},
		{"in range passes through", 20, 20},
		{"above max is capped", 500, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPageSize(tt.in))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 2, TotalPages(10, 5))
	assert.Equal(t, 1, TotalPages(1, 5))
	assert.Equal(t, 1, TotalPages(0, 5), "an empty set still has one page")
}

func TestNewPageFirstOfThree(t *testing.T) {
	results := []int{1, 2, 3, 4, 5}
	page := NewPage("http://localhost:8000/bookings", 1, 5, 12, results)

	assert.Equal(t, int64(12), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 5, page.PageSize)
	assert.Nil(t, page.Previous)
	if assert.NotNil(t, page.Next) {
		assert.Equal(t, "http://localhost:8000/bookings?page=2&page_size=5", *page.Next)
	}
}

func TestNewPageMiddleAndLast(t *testing.T) {
	middle := NewPage("/bookings", 2, 5, 12, nil)
	assert.NotNil(t, middle.Next)
	assert.NotNil(t, middle.Previous)

	last := NewPage("/bookings", 3, 5, 12, nil)
	assert.Nil(t, last.Next)
	if assert.NotNil(t, last.Previous) {
		assert.Equal(t, "/bookings?page=2&page_size=5", *last.Previous)
	}
}
