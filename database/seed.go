package database

import (
	"log"
	"theatre_api/config"
	"theatre_api/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the initial admin user and the base genre catalog.
func SeedData(db *gorm.DB) {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" {
		adminEmail = "admin@theatre.local"
	}
	if adminPassword == "" {
		adminPassword = "changeme"
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}

	admin := model.User{
		Email:    adminEmail,
		Password: string(bytes),
		IsStaff:  true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin user:", err)
	}

	genres := []model.Genre{
		{Name: "Drama"},
		{Name: "Comedy"},
		{Name: "Tragedy"},
		{Name: "Musical"},
	}
	for _, genre := range genres {
		if err := db.Where(model.Genre{Name: genre.Name}).FirstOrCreate(&genre).Error; err != nil {
			log.Println("failed to seed genre:", genre.Name, "error:", err)
		}
	}
}
