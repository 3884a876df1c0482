package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDataBase() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		fmt.Println("Cannot connect to database ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the database ")
	}

	// First migrate models with no dependencies
	DB.AutoMigrate(&User{})
	DB.AutoMigrate(&DeviceToken{})
	DB.AutoMigrate(&Assessment{})

	// Then migrate models that depend on the above
	DB.AutoMigrate(&Question{})
	DB.AutoMigrate(&Child{})
	DB.AutoMigrate(&CDC{})
	DB.AutoMigrate(&OnboardingDraft{})

	// Finally migrate models that depend on multiple other models
	DB.AutoMigrate(&AssessmentResult{})
	DB.AutoMigrate(&ResultAnswer{})
	DB.AutoMigrate(&Booking{})

	SeedAssessments()
}
