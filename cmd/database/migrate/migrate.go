package migration

import (
	"fmt"
	"log"
	"mealbridge-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Setup PostgreSQL extensions for geographical calculations
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"earthdistance\" CASCADE;")
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"cube\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Food{}); err != nil {
		log.Fatalf("Error migrating food database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Fatalf("Error migrating claim database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Event{}); err != nil {
		log.Fatalf("Error migrating event database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
