package models

import (
	"time"

	"gorm.io/gorm"
)

// Register is the account row. Password always holds a bcrypt hash.
type Register struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255"`
	Email       string    `json:"email" gorm:"uniqueIndex;size:255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:15"`
	Password    string    `json:"-"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsStaff     bool      `json:"is_staff" gorm:"default:false"`
	IsVerified  bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Profile         *Profile         `json:"profile,omitempty" gorm:"foreignKey:RegisterID"`
	OTPs            []OTP            `json:"-" gorm:"foreignKey:RegisterID"`
	ServiceRequests []ServiceRequest `json:"-" gorm:"foreignKey:RegisterID"`
	Bookings        []BookingList    `json:"-" gorm:"foreignKey:RegisterID"`
}

// DeleteAccount removes a user together with their dependent rows. OTPs and the
// profile go with the account; service requests and bookings survive with the
// requester detached. Callers must run this inside a transaction.
func DeleteAccount(tx *gorm.DB, registerID uint) error {
	if err := tx.Where("register_id = ?", registerID).Delete(&OTP{}).Error; err != nil {
		return err
	}
	if err := tx.Where("register_id = ?", registerID).Delete(&Profile{}).Error; err != nil {
		return err
	}
	if err := tx.Model(&ServiceRequest{}).Where("register_id = ?", registerID).
		Update("register_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Model(&BookingList{}).Where("register_id = ?", registerID).
		Update("register_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&Register{}, registerID).Error
}
