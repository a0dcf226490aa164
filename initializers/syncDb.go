package initializers

import (
	"log"

	"github.com/pinshop/pinshop-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.User{}, &models.Seller{}, &models.Client{}, &models.Product{})
	log.Println("Database synced successfully.")
}
