package routes

import (
	"Backend-FitForm/src/controllers"
	"Backend-FitForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// uploadRoutes - raw image uploads, served back statically from /uploads
func uploadRoutes(router fiber.Router) {
	uploads := router.Group("/uploads")
	uploads.Use(middleware.AuthJWT)

	uploads.Post("/images", controllers.UploadFormImage)
}
