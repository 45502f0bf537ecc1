package routes

import (
	"Backend-FitForm/src/controllers"
	"Backend-FitForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes - CRUD over the caller's workout forms
func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")
	forms.Use(middleware.AuthJWT)

	forms.Get("/", controllers.GetMyForms)
	forms.Post("/", controllers.CreateForm)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Put("/:id", controllers.UpdateForm)
	forms.Delete("/:id", controllers.DeleteForm)
}
