package main

import (
	"fmt"
	"himalayan-estate-server/models"
	"himalayan-estate-server/storage"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Creates or refreshes the administrator credential from
// ADMIN_EMAIL / ADMIN_PASSWORD / ADMIN_NAME.
func main() {
	db := storage.InitializeDB()

	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	var admin models.User
	lookup := db.Where("email = ?", email).Limit(1).Find(&admin)
	if lookup.Error != nil {
		log.Fatalf("Error looking up admin user: %v", lookup.Error)
	}

	admin.Name = name
	admin.Email = email
	admin.Password = string(hash)
	admin.Role = "admin"

	if err := db.Save(&admin).Error; err != nil {
		log.Fatalf("Error saving admin user: %v", err)
	}

	fmt.Printf("Admin user %s ready (id=%d)\n", admin.Email, admin.ID)
}
