package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "feedback-backend/docs"
	"feedback-backend/src/database"
	"feedback-backend/src/jobs"
	"feedback-backend/src/routes"
	"feedback-backend/src/seeder"
)

// @title           Feedback Backend API
// @version         1.0
// @description     Feedback collection service: admins author forms, anyone submits, sentiment is derived per answer.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	seeder.SeedAdminUser()

	go jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8888"
	}

	log.Println("Server is running on port " + appPort)
	if err := app.Listen(fmt.Sprintf(":%s", appPort)); err != nil {
		log.Fatal(err)
	}
}
