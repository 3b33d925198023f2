package models

import "time"

// OTPValidity is how long a code stays usable after creation.
const OTPValidity = 5 * time.Minute

// OTP is a one-time verification code emailed after password login. A user can
// hold several rows at once; verification only ever reads the newest one.
type OTP struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RegisterID uint      `json:"register_id"`
	Register   Register  `json:"-" gorm:"foreignKey:RegisterID"`
	Code       string    `json:"otp_code" gorm:"size:6"`
	CreatedAt  time.Time `json:"created_at"`
}

// IsExpired reports whether the code is past its validity window at the given time.
func (o *OTP) IsExpired(now time.Time) bool {
	return now.Sub(o.CreatedAt) > OTPValidity
}
