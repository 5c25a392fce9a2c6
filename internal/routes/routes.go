package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/config"
	"github.com/example/qaforum/internal/handlers"
	"github.com/example/qaforum/internal/middleware"
	"github.com/example/qaforum/internal/session"
	"github.com/example/qaforum/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st store.Store, cfg *config.Config) {
	sessions := session.NewManager(st, cfg.SessionSecret, cfg.SessionLifetime)

	app.Use(middleware.LoadUser(sessions))

	authHandler := handlers.NewAuthHandler(st, sessions)
	questionHandler := handlers.NewQuestionHandler(st)
	adminHandler := handlers.NewAdminHandler()

	// Public pages
	app.Get("/", questionHandler.List)
	app.Get("/detail/:id", questionHandler.Detail)
	app.Get("/search", questionHandler.Search)

	// Account
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authHandler.Login)
	app.Get("/regist", authHandler.RegisterForm)
	app.Post("/regist", authHandler.Register)
	app.Get("/logout", authHandler.Logout)

	// Login-only pages
	protected := app.Group("", middleware.RequireAuth())
	protected.Get("/question", questionHandler.NewQuestionForm)
	protected.Post("/question", questionHandler.CreateQuestion)
	protected.Post("/add_answer", questionHandler.AddAnswer)
	protected.Get("/profile/questions", questionHandler.MyQuestions)
	protected.Get("/admin/", adminHandler.Show)
}
