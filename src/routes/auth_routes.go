package routes

import (
	"Backend-FitForm/src/controllers"
	"Backend-FitForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes - register/login/refresh/logout plus the Google OAuth pair
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser) // 🔐 login
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Get("/google", controllers.GoogleLogin)
	auth.Get("/google/callback", controllers.GoogleCallback)

	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)
}
