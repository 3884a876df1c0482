package main

import (
	"os"

	"CDCPlatform/CronJobs"
	"CDCPlatform/FirebaseMessaging"
	"CDCPlatform/Models"
	"CDCPlatform/Routes"
	"CDCPlatform/Whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	if os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH") != "" {
		FirebaseMessaging.Setup()
	}
	go Whatsapp.Listen()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://cdcplatform.in", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)
	maintenance := CronJobs.NewBookingMaintenance(Models.DB)
	scheduler := maintenance.StartMaintenanceCron()
	_ = scheduler
	router.Run(":7000")
}
