package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/serviceconnect/booking-backend/config"
	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
)

// setupTestDB binds db.DB to a fresh in-process database and wires the
// controllers with a test config.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Register{},
		&models.OTP{},
		&models.Profile{},
		&models.Service{},
		&models.Subservice{},
		&models.EmployeeRegistration{},
		&models.ServiceRegistry{},
		&models.ServiceRequest{},
		&models.BookingList{},
	))

	db.DB = gdb
	Init(&config.Config{JWTSecret: "test-secret"}, nil, nil)
	return gdb
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func createTestUser(t *testing.T, gdb *gorm.DB, email string) models.Register {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.Register{
		Name:        "Asha",
		Email:       email,
		PhoneNumber: "9876543210",
		Password:    string(hash),
		IsActive:    true,
	}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func TestRegisterDuplicateEmail(t *testing.T) {
	gdb := setupTestDB(t)
	app := fiber.New()
	app.Post("/register", Register)

	payload := fiber.Map{
		"name":         "Asha",
		"email":        "asha@example.com",
		"password":     "longenough",
		"phone_number": "9876543210",
	}

	resp := postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors, "email")

	var count int64
	gdb.Model(&models.Register{}).Where("email = ?", "asha@example.com").Count(&count)
	assert.Equal(t, int64(1), count, "the second registration must not create a row")
}

func TestVerifyOTPUsesMostRecentCode(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "asha@example.com")

	older := models.OTP{RegisterID: user.ID, Code: "111111", CreatedAt: time.Now().Add(-2 * time.Minute)}
	newest := models.OTP{RegisterID: user.ID, Code: "222222", CreatedAt: time.Now().Add(-time.Second)}
	require.NoError(t, gdb.Create(&older).Error)
	require.NoError(t, gdb.Create(&newest).Error)

	app := fiber.New()
	app.Post("/verify-otp", VerifyOTP)

	// The superseded code is rejected and nothing is deleted
	resp := postJSON(t, app, "/verify-otp", fiber.Map{"email": user.Email, "otp_code": "111111"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	gdb.Model(&models.OTP{}).Where("register_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)

	// The most recent code verifies and removes every OTP row
	resp = postJSON(t, app, "/verify-otp", fiber.Map{"email": user.Email, "otp_code": "222222"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	gdb.Model(&models.OTP{}).Where("register_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	var verified models.Register
	require.NoError(t, gdb.First(&verified, user.ID).Error)
	assert.True(t, verified.IsVerified)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "asha@example.com")

	stale := models.OTP{RegisterID: user.ID, Code: "333333", CreatedAt: time.Now().Add(-6 * time.Minute)}
	require.NoError(t, gdb.Create(&stale).Error)

	app := fiber.New()
	app.Post("/verify-otp", VerifyOTP)

	resp := postJSON(t, app, "/verify-otp", fiber.Map{"email": user.Email, "otp_code": "333333"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Expired codes are rejected, not consumed
	var count int64
	gdb.Model(&models.OTP{}).Where("register_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	setupTestDB(t)
	app := fiber.New()
	app.Post("/token/refresh", RefreshToken)

	access, err := signToken(jwt.MapClaims{
		"id":    1,
		"email": "asha@example.com",
		"type":  "access",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	resp := postJSON(t, app, "/token/refresh", fiber.Map{"refresh": access})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	refresh, err := signToken(jwt.MapClaims{
		"id":    1,
		"email": "asha@example.com",
		"type":  "refresh",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	resp = postJSON(t, app, "/token/refresh", fiber.Map{"refresh": refresh})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["access"])
}

func TestLogoutRejectsAccessToken(t *testing.T) {
	setupTestDB(t)
	app := fiber.New()
	app.Post("/logout", Logout)

	access, err := signToken(jwt.MapClaims{
		"id":   1,
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	resp := postJSON(t, app, "/logout", fiber.Map{"refresh": access})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	refresh, err := signToken(jwt.MapClaims{
		"id":   1,
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	resp = postJSON(t, app, "/logout", fiber.Map{"refresh": refresh})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
