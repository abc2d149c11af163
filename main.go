package main

import (
	"log"
	"os"

	"recaptcharelay/connection"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := connection.StartServer(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
