package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"studiofit/config"
	"studiofit/database"
	authRoutes "studiofit/routers/authRoutes"
	calendarRoutes "studiofit/routers/calendarRoutes"
	classRoutes "studiofit/routers/classRoutes"
	planRoutes "studiofit/routers/planRoutes"
	recurringRoutes "studiofit/routers/recurringRoutes"
	studentRoutes "studiofit/routers/studentRoutes"
	"studiofit/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	classRoutes.SetupClassRoutes(app)
	calendarRoutes.SetupCalendarRoutes(app)
	recurringRoutes.SetupRecurringRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	planRoutes.SetupPlanRoutes(app)

	// Background jobs
	utils.InitializeRecurringScheduler()
	utils.InitializePaymentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
