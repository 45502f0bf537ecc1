package main

import (
	_ "Backend-FitForm/docs"
	"Backend-FitForm/src/controllers"
	"Backend-FitForm/src/database"
	"Backend-FitForm/src/jobs"
	"Backend-FitForm/src/routes"
	"Backend-FitForm/src/seeder"
	"Backend-FitForm/src/services/editor"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	// Editor drafts live in Redis when it is up, otherwise in process memory.
	if database.RedisClient != nil {
		controllers.SessionStore = editor.NewRedisStore(database.RedisClient, editor.DefaultSessionTTL)
	} else {
		controllers.SessionStore = editor.NewMemoryStore()
	}

	// Background worker for orphaned image cleanup
	go jobs.StartWorker()

	if os.Getenv("SEED_SAMPLES") == "true" {
		seeder.SeedSampleForms()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded form images are served straight from disk.
	app.Static("/uploads", "./uploads")

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
