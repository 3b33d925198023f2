package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
	"github.com/serviceconnect/booking-backend/utils"
)

type ProfileInput struct {
	FullName    string `json:"full_name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required"`
	HouseName   string `json:"house_name" validate:"required"`
	Landmark    string `json:"landmark" validate:"required"`
	PinCode     string `json:"pin_code" validate:"required,len=6"`
	District    string `json:"district" validate:"required"`
	State       string `json:"state" validate:"required"`
}

// emailTakenByOther reports whether the profile email belongs to a different
// account than the caller's.
func emailTakenByOther(email string, callerID uint) bool {
	var other models.Register
	if db.DB.Where("email = ?", email).First(&other).RowsAffected == 0 {
		return false
	}
	return other.ID != callerID
}

// GetProfile returns the profile of the logged-in user
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	if db.DB.Where("register_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found.",
		})
	}

	return c.JSON(profile)
}

// CreateProfile creates the caller's profile, one per account.
func CreateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var existing models.Profile
	if db.DB.Where("register_id = ?", userID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Profile already exists.",
		})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	if emailTakenByOther(input.Email, userID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"email": "Email is already in use."},
		})
	}

	profile := models.Profile{
		RegisterID:  userID,
		FullName:    input.FullName,
		Address:     input.Address,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		HouseName:   input.HouseName,
		Landmark:    input.Landmark,
		PinCode:     input.PinCode,
		District:    input.District,
		State:       input.State,
	}

	if err := db.DB.Create(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Profile created successfully.",
		"profile": profile,
	})
}

// UpdateProfile replaces the caller's profile in full.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	if db.DB.Where("register_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found.",
		})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if errs := utils.ValidateStruct(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	if emailTakenByOther(input.Email, userID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"email": "Email is already in use."},
		})
	}

	profile.FullName = input.FullName
	profile.Address = input.Address
	profile.Email = input.Email
	profile.PhoneNumber = input.PhoneNumber
	profile.DateOfBirth = input.DateOfBirth
	profile.Gender = input.Gender
	profile.HouseName = input.HouseName
	profile.Landmark = input.Landmark
	profile.PinCode = input.PinCode
	profile.District = input.District
	profile.State = input.State

	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully.",
		"profile": profile,
	})
}

// PatchProfile applies the fields present in the body, leaving the rest alone.
func PatchProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	if db.DB.Where("register_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found.",
		})
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email != "" && emailTakenByOther(input.Email, userID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"email": "Email is already in use."},
		})
	}

	// Updates skips zero values, which is exactly partial-update semantics here
	updates := models.Profile{
		FullName:    input.FullName,
		Address:     input.Address,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		HouseName:   input.HouseName,
		Landmark:    input.Landmark,
		PinCode:     input.PinCode,
		District:    input.District,
		State:       input.State,
	}

	if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Profile partially updated successfully.",
		"profile": profile,
	})
}

// DeleteProfile removes the caller's profile.
func DeleteProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	if db.DB.Where("register_id = ?", userID).First(&profile).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Profile not found.",
		})
	}

	if err := db.DB.Delete(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete profile",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAccount removes the caller's account along with their OTPs and
// profile. Requests and bookings survive with the requester detached.
func DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.Register
	if db.DB.First(&user, userID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return models.DeleteAccount(tx, userID)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete account",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Account deleted successfully.",
	})
}
