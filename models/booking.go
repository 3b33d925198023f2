package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingList is the derived confirmation record behind every service request.
type BookingList struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	RegisterID       *uint           `json:"register_id"`
	Register         *Register       `json:"register,omitempty" gorm:"foreignKey:RegisterID"`
	BookingDate      time.Time       `json:"booking_date"`
	ServiceRequestID *uint           `json:"service_request_id"`
	ServiceRequest   *ServiceRequest `json:"service_request,omitempty" gorm:"foreignKey:ServiceRequestID"`
}

// NewBookingForRequest derives the booking row for a freshly created request.
// The booking date is the request's creation time.
func NewBookingForRequest(req *ServiceRequest) BookingList {
	return BookingList{
		RegisterID:       req.RegisterID,
		BookingDate:      req.CreatedAt,
		ServiceRequestID: &req.ID,
	}
}

// CreateBookingForRequest persists the derived booking. Call it in the same
// transaction that created the request so the one-request-one-booking invariant
// cannot be half-applied.
func CreateBookingForRequest(tx *gorm.DB, req *ServiceRequest) error {
	booking := NewBookingForRequest(req)
	return tx.Create(&booking).Error
}
