package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serviceconnect/booking-backend/db"
	"github.com/serviceconnect/booking-backend/models"
	"github.com/serviceconnect/booking-backend/utils"
)

// ServiceRegistryResponse is the listing row, denormalized for display.
type ServiceRegistryResponse struct {
	ID           uint   `json:"id"`
	Employee     uint   `json:"employee"`
	EmployeeName string `json:"employee_name"`
	Service      uint   `json:"service"`
	ServiceTitle string `json:"service_title"`
	MinPrice     uint   `json:"min_price"`
	MaxPrice     uint   `json:"max_price"`
	Description  string `json:"description"`
}

// GetServiceRegistry returns every employee-to-service price quote.
func GetServiceRegistry(c *fiber.Ctx) error {
	var entries []models.ServiceRegistry
	if err := db.DB.Preload("Employee").Preload("Service").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch service registry",
			Error:   err.Error(),
		})
	}

	response := make([]ServiceRegistryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, ServiceRegistryResponse{
			ID:           entry.ID,
			Employee:     entry.EmployeeID,
			EmployeeName: entry.Employee.Name,
			Service:      entry.ServiceID,
			ServiceTitle: entry.Service.Title,
			MinPrice:     entry.MinPrice,
			MaxPrice:     entry.MaxPrice,
			Description:  entry.Description,
		})
	}

	return c.JSON(response)
}
