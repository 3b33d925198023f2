package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
	"github.com/serviceconnect/booking-backend/utils"
)

// GetAllServices returns the catalog with nested subservices.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service

	if err := db.DB.Preload("Subservices").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}

	return c.JSON(services)
}

// UploadServiceImage attaches an image to a catalog service.
func UploadServiceImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	url, ok := receiveImage(c, fmt.Sprintf("service_%s", uuid.NewString()), "services")
	if !ok {
		return nil
	}

	if err := db.DB.Model(&service).Update("image", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}

	service.Image = &url
	return c.JSON(service)
}

// UploadSubserviceImage attaches an image to a subservice.
func UploadSubserviceImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var subservice models.Subservice
	if db.DB.First(&subservice, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subservice not found",
		})
	}

	url, ok := receiveImage(c, fmt.Sprintf("subservice_%s", uuid.NewString()), "subservices")
	if !ok {
		return nil
	}

	if err := db.DB.Model(&subservice).Update("image", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}

	subservice.Image = &url
	return c.JSON(subservice)
}

// receiveImage pulls the multipart "image" field, enforces the 500 KB cap and
// uploads it. When it returns ok=false the error response has already been
// written.
func receiveImage(c *fiber.Ctx, publicID, folder string) (string, bool) {
	if uploader == nil {
		_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Image storage is not configured",
		})
		return "", false
	}

	file, err := c.FormFile("image")
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get image",
		})
		return "", false
	}

	if file.Size > utils.MaxImageSize {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File size exceeds 500 KB.",
		})
		return "", false
	}

	f, err := file.Open()
	if err != nil {
		_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open image",
		})
		return "", false
	}
	defer f.Close()

	url, err := uploader.UploadImage(f, publicID, folder)
	if err != nil {
		_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload image",
		})
		return "", false
	}

	return url, true
}
