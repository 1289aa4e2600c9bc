package main

import (
	"coursehub/access"
	"coursehub/config"
	"coursehub/database"
	adminRoutes "coursehub/routers/adminRoutes"
	authRoutes "coursehub/routers/authRoutes"
	courseRoutes "coursehub/routers/courseRoutes"
	superAdminRoutes "coursehub/routers/superAdminRoutes"
	"coursehub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	access.Seal(config.AppConfig.SuperAdminEmails)
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	superAdminRoutes.SetupSuperAdminRoutes(app)

	if config.AppConfig.EnableAdminDigest {
		utils.InitializeModerationScheduler()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
