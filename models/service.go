package models

type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "Active"
	ServiceInactive ServiceStatus = "Inactive"
)

// Service is a top-level catalog entry. Image holds a resolved access URL once
// one has been uploaded, nil otherwise.
type Service struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Title       string        `json:"title" gorm:"size:50;index"`
	Image       *string       `json:"image"`
	Description string        `json:"description"`
	Status      ServiceStatus `json:"status" gorm:"size:10;default:Active"`
	Subservices []Subservice  `json:"subservices" gorm:"foreignKey:ServiceID"`
}

// Subservice is a concrete offering under a Service.
type Subservice struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	ServiceID   uint    `json:"service_id" gorm:"index"`
	Title       string  `json:"title" gorm:"size:50;index"`
	Image       *string `json:"image"`
	Description string  `json:"description"`
}
