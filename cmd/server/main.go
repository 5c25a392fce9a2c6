package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/qaforum/internal/config"
	"github.com/example/qaforum/internal/database"
	"github.com/example/qaforum/internal/routes"
	"github.com/example/qaforum/internal/store"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)
	st := store.NewGormStore(db)

	if err := st.DeleteExpiredSessions(time.Now()); err != nil {
		log.Printf("expired session cleanup failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "QA Forum Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, st, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
