package db

import (
	"log"

	"github.com/serviceconnect/booking-backend/models"
)

// Seed fills the catalog and the employee registry with a starter data set.
// Catalog rows are maintained by staff, not through the public API, so a fresh
// deployment gets them from here. Existing rows are left alone.
func Seed() {
	services := []models.Service{
		{
			Title:       "Plumbing",
			Description: "Pipe fitting, leak repair and bathroom installations",
			Status:      models.ServiceActive,
			Subservices: []models.Subservice{
				{Title: "Leak Repair", Description: "Locating and fixing water leaks"},
				{Title: "Pipe Installation", Description: "New pipe lines for kitchens and bathrooms"},
			},
		},
		{
			Title:       "Electrical",
			Description: "Wiring, fittings and appliance installation",
			Status:      models.ServiceActive,
			Subservices: []models.Subservice{
				{Title: "House Wiring", Description: "Full and partial rewiring"},
				{Title: "Appliance Setup", Description: "Fans, lights and home appliances"},
			},
		},
		{
			Title:       "Cleaning",
			Description: "Deep cleaning for homes and offices",
			Status:      models.ServiceActive,
			Subservices: []models.Subservice{
				{Title: "Home Deep Clean", Description: "Full house deep cleaning"},
			},
		},
	}

	for i := range services {
		var existing models.Service
		if DB.Where("title = ?", services[i].Title).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&services[i]).Error; err != nil {
				log.Printf("Failed to seed service %s: %v", services[i].Title, err)
			}
		}
	}

	employees := []models.EmployeeRegistration{
		{Name: "Ravi Kumar", Age: 32, PhoneNumber: "9876543210"},
		{Name: "Anil Thomas", Age: 41, PhoneNumber: "9876501234"},
	}

	for i := range employees {
		var existing models.EmployeeRegistration
		if DB.Where("name = ?", employees[i].Name).First(&existing).RowsAffected == 0 {
			if err := DB.Create(&employees[i]).Error; err != nil {
				log.Printf("Failed to seed employee %s: %v", employees[i].Name, err)
			}
		}
	}

	// Quote every seeded employee against the first seeded service so the
	// registry listing has something to show.
	var plumbing models.Service
	if DB.Where("title = ?", "Plumbing").First(&plumbing).RowsAffected > 0 {
		var allEmployees []models.EmployeeRegistration
		DB.Find(&allEmployees)
		for _, emp := range allEmployees {
			var existing models.ServiceRegistry
			if DB.Where("employee_id = ? AND service_id = ?", emp.ID, plumbing.ID).
				First(&existing).RowsAffected == 0 {
				entry := models.ServiceRegistry{
					EmployeeID:  emp.ID,
					ServiceID:   plumbing.ID,
					MinPrice:    500,
					MaxPrice:    2000,
					Description: "Standard plumbing visit",
				}
				if err := DB.Create(&entry).Error; err != nil {
					log.Printf("Failed to seed registry entry for %s: %v", emp.Name, err)
				}
			}
		}
	}

	log.Println("✅ Seed data applied successfully!")
}
