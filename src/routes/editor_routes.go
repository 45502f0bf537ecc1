package routes

import (
	"Backend-FitForm/src/controllers"
	"Backend-FitForm/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// editorRoutes - the form editor session lifecycle
func editorRoutes(router fiber.Router) {
	sessions := router.Group("/editor/sessions")
	sessions.Use(middleware.AuthJWT)

	sessions.Post("/", controllers.BeginEditorSession)
	sessions.Get("/:id", controllers.GetEditorSession)
	sessions.Patch("/:id", controllers.ApplyEditorField)
	sessions.Post("/:id/image", controllers.AttachEditorImage)
	sessions.Post("/:id/submit", controllers.SubmitEditorSession)
	sessions.Delete("/:id", controllers.DismissEditorSession)
}
