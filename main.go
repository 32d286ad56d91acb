package main

import (
	"log"
	"theatre_api/config"
	"theatre_api/database"
	"theatre_api/handler"
	"theatre_api/helper"
	"theatre_api/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	origins := config.Config("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	database.ConnectDB()
	handler.InitRedis()

	helper.StartStatsScheduler()
	defer helper.StopStatsScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
