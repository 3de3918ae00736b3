package main

import (
	"fmt"
	"log"

	"beautyart-backend/config"
	"beautyart-backend/dashboard"
	"beautyart-backend/routes"
	"beautyart-backend/services"
	"beautyart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	s := store.New()
	store.Seed(s)

	growth := dashboard.Growth{Revenue: cfg.RevenueGrowth, Customer: cfg.CustomerGrowth}
	services.NewSummaryService(s, growth).StartScheduler()

	r := routes.SetupRouter(s, cfg)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
