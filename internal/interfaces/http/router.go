package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/identity-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC *usecase.UserUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Users
	users := api.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.ChangeStatus)
	users.Put("/:id", userHandler.Update)
}
