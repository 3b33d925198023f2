package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
	"github.com/serviceconnect/booking-backend/utils"
)

type ServiceRequestInput struct {
	ServiceRegistryID uint      `json:"service_registry_id" validate:"required"`
	Title             string    `json:"title" validate:"required,max=100"`
	Description       string    `json:"description" validate:"required"`
	FromTime          time.Time `json:"from_time" validate:"required"`
	ToTime            time.Time `json:"to_time" validate:"required"`
}

// GetAllServiceRequests returns every service request.
func GetAllServiceRequests(c *fiber.Ctx) error {
	var requests []models.ServiceRequest
	if err := db.DB.Preload("ServiceRegistry").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch service requests",
			Error:   err.Error(),
		})
	}
	return c.JSON(requests)
}

// GetServiceRequest returns a single service request by ID.
func GetServiceRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	var request models.ServiceRequest
	if db.DB.Preload("ServiceRegistry").First(&request, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "ServiceRequest not found.",
		})
	}
	return c.JSON(request)
}

// CreateServiceRequest files a request for the authenticated caller and
// derives its booking in the same transaction.
func CreateServiceRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ServiceRequestInput)
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

	var registry models.ServiceRegistry
	if db.DB.First(&registry, input.ServiceRegistryID).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"service_registry_id": "Invalid service registry."},
		})
	}

	request := models.ServiceRequest{
		ServiceRegistryID: input.ServiceRegistryID,
		RegisterID:        &userID,
		Title:             input.Title,
		Description:       input.Description,
		FromTime:          input.FromTime,
		ToTime:            input.ToTime,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&request).Error; err != nil {
			return err
		}
		return models.CreateBookingForRequest(tx, &request)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// UpdateServiceRequest replaces a service request in full.
func UpdateServiceRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	var request models.ServiceRequest
	if db.DB.First(&request, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "ServiceRequest not found.",
		})
	}

	input := new(ServiceRequestInput)
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

	var registry models.ServiceRegistry
	if db.DB.First(&registry, input.ServiceRegistryID).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"service_registry_id": "Invalid service registry."},
		})
	}

	request.ServiceRegistryID = input.ServiceRegistryID
	request.Title = input.Title
	request.Description = input.Description
	request.FromTime = input.FromTime
	request.ToTime = input.ToTime

	if err := db.DB.Save(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service request",
		})
	}

	return c.JSON(request)
}

// PatchServiceRequest applies only the fields present in the body.
func PatchServiceRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	var request models.ServiceRequest
	if db.DB.First(&request, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "ServiceRequest not found.",
		})
	}

	input := new(ServiceRequestInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.ServiceRegistryID != 0 {
		var registry models.ServiceRegistry
		if db.DB.First(&registry, input.ServiceRegistryID).RowsAffected == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"service_registry_id": "Invalid service registry."},
			})
		}
	}

	// Updates skips zero values, which gives partial-update semantics
	updates := models.ServiceRequest{
		ServiceRegistryID: input.ServiceRegistryID,
		Title:             input.Title,
		Description:       input.Description,
		FromTime:          input.FromTime,
		ToTime:            input.ToTime,
	}

	if err := db.DB.Model(&request).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service request",
		})
	}

	return c.JSON(request)
}

// DeleteServiceRequest removes a service request. Bookings derived from it
// are kept as history.
func DeleteServiceRequest(c *fiber.Ctx) error {
	id := c.Params("id")
	var request models.ServiceRequest
	if db.DB.First(&request, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "ServiceRequest not found.",
		})
	}

	if err := db.DB.Delete(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete service request",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
