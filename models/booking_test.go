package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingForRequest(t *testing.T) {
	registerID := uint(7)
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	req := ServiceRequest{
		ID:                42,
		ServiceRegistryID: 3,
		RegisterID:        &registerID,
		Title:             "Fix kitchen sink",
		CreatedAt:         created,
	}

	booking := NewBookingForRequest(&req)

	if assert.NotNil(t, booking.RegisterID) {
		assert.Equal(t, registerID, *booking.RegisterID)
	}
	if assert.NotNil(t, booking.ServiceRequestID) {
		assert.Equal(t, req.ID, *booking.ServiceRequestID)
	}
	assert.Equal(t, created, booking.BookingDate, "booking date must be the request's creation time")
}

func TestNewBookingForRequestAnonymousRequester(t *testing.T) {
	req := ServiceRequest{ID: 9, CreatedAt: time.Now()}

	booking := NewBookingForRequest(&req)

	assert.Nil(t, booking.RegisterID)
	if assert.NotNil(t, booking.ServiceRequestID) {
		assert.Equal(t, uint(9), *booking.ServiceRequestID)
	}
}
