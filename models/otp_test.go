package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPIsExpired(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	otp := OTP{Code: "123456", CreatedAt: created}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"just created", created, false},
		{"within window", created.Add(4*time.Minute + 59*time.Second), false},
		{"exactly at the limit", created.Add(OTPValidity), false},
		{"one second past", created.Add(OTPValidity + time.Second), true},
		{"long past", created.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, otp.IsExpired(tt.now))
		})
	}
}
