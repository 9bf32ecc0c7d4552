package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-ClassPulse/src/database"
	"Backend-ClassPulse/src/jobs"
	"Backend-ClassPulse/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title ClassPulse API
// @description Live classroom feedback: timed activities, join codes, anonymous reactions.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional; the app degrades to dev mode without them.
	database.InitRedis()
	database.InitAsynq()
	go jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // must stay false with AllowOrigins "*"
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI))); err != nil {
		log.Fatal(err)
	}
}
