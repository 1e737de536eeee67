package main

import (
	"ims-backend/config"
	"ims-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize the database.
	config.InitDB()

	logger := config.GetLogger()

	// Create a new Gin router.
	router := gin.Default()

	// Register the API routes.
	routes.RegisterRoutes(router)

	port := config.Port()
	logger.Infof("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}
