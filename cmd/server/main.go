package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"bakery_console_backend/internal/remote"
	"bakery_console_backend/internal/router"
	"bakery_console_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()
	utils.LoadDotenv()

	// Session token signing key
	utils.SetJWTSecret(utils.Getenv("JWT_SECRET", ""))

	// Remote data store configuration
	remoteBaseURL := utils.Getenv("REMOTE_API_BASE_URL", "http://localhost:8000/api")
	remoteTimeout, err := time.ParseDuration(utils.Getenv("REMOTE_TIMEOUT", "10s"))
	if err != nil {
		log.Fatalf("Invalid REMOTE_TIMEOUT: %v", err)
	}
	client := remote.NewClient(remoteBaseURL, remoteTimeout)
	utils.LogInfo("Remote store configured", map[string]interface{}{"base_url": remoteBaseURL, "timeout": remoteTimeout.String()})

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := utils.Getenv("CORS_ALLOWED_ORIGINS", "")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(engine, client)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
