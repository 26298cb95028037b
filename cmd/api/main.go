package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gotrend/internal/config"
	"gotrend/internal/container"
)

// Standalone API entrypoint. The root binary serves the same API; this one
// exists for deployments that only want the HTTP surface.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	log.Fatal(appContainer.Server.Start(appContainer.Addr()))
}
