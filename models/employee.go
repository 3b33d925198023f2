package models

import "time"

// EmployeeRegistration is a service worker on the books.
type EmployeeRegistration struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100"`
	Age         uint      `json:"age"`
	PhoneNumber string    `json:"phone_number" gorm:"size:15"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceRegistry is a price quote: one employee offering one service within a
// price range.
type ServiceRegistry struct {
	ID          uint                 `json:"id" gorm:"primaryKey"`
	EmployeeID  uint                 `json:"employee_id"`
	Employee    EmployeeRegistration `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	ServiceID   uint                 `json:"service_id"`
	Service     Service              `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	MinPrice    uint                 `json:"min_price"`
	MaxPrice    uint                 `json:"max_price"`
	Description string               `json:"description"`
}
