package models

import "time"

// ServiceRequest is a customer asking for a quoted service within a time window.
// RegisterID is nullable so requests outlive a deleted account.
type ServiceRequest struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	ServiceRegistryID uint            `json:"service_registry_id"`
	ServiceRegistry   ServiceRegistry `json:"service_registry,omitempty" gorm:"foreignKey:ServiceRegistryID"`
	RegisterID        *uint           `json:"register_id"`
	Register          *Register       `json:"register,omitempty" gorm:"foreignKey:RegisterID"`
	Title             string          `json:"title" gorm:"size:100"`
	Description       string          `json:"description"`
	FromTime          time.Time       `json:"from_time"`
	ToTime            time.Time       `json:"to_time"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
