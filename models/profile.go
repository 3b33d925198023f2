package models

import "time"

// Profile holds the extended personal details of an account, one row per user.
type Profile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RegisterID  uint      `json:"register_id" gorm:"uniqueIndex"`
	FullName    string    `json:"full_name" gorm:"size:255"`
	Address     string    `json:"address"`
	Email       string    `json:"email" gorm:"size:255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:15"`
	DateOfBirth string    `json:"date_of_birth" gorm:"size:10"` // YYYY-MM-DD
	Gender      string    `json:"gender" gorm:"size:10"`
	HouseName   string    `json:"house_name" gorm:"size:255"`
	Landmark    string    `json:"landmark" gorm:"size:255"`
	PinCode     string    `json:"pin_code" gorm:"size:6"`
	District    string    `json:"district" gorm:"size:100"`
	State       string    `json:"state" gorm:"size:100"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
