package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
	"github.com/serviceconnect/booking-backend/utils"
)

// GetBookings returns the booking list, page-number paginated, with the
// requester and the originating service request eagerly loaded.
func GetBookings(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := utils.ClampPageSize(c.QueryInt("page_size", utils.DefaultPageSize))

	var totalItems int64
	if err := db.DB.Model(&models.BookingList{}).Count(&totalItems).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to count bookings",
			Error:   err.Error(),
		})
	}

	if page < 1 || page > utils.TotalPages(totalItems, pageSize) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invalid page.",
		})
	}

	var bookings []models.BookingList
	if err := db.DB.Preload("Register").Preload("ServiceRequest").
		Order("id").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	baseURL := c.BaseURL() + c.Path()
	return c.JSON(utils.NewPage(baseURL, page, pageSize, totalItems, bookings))
}
