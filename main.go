// @title UniAdmin Backend API
// @version 1.0
// @description Academic administration backend: students, teachers, classrooms, faculties, majors, attendance and transcripts.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	_ "uniadmin_backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"uniadmin_backend/bootstrap"
	"uniadmin_backend/config"
	"uniadmin_backend/database"
	"uniadmin_backend/internal/middleware"
	"uniadmin_backend/internal/routes"

	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(nil)

	db := database.DB
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	h := routes.BuildHandlers(db, client, cfg.JWTSecret)
	routes.SetupRoutes(app, h)

	log.Fatal(app.Listen(":" + cfg.Port))
}
