package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/identity-api/internal/application/dto"
	"github.com/tu-usuario/identity-api/internal/application/usecase"
	"github.com/tu-usuario/identity-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP del recurso user.
// Todas las respuestas usan el sobre {data, status, error, message?}. El caso
// no-encontrado responde HTTP 400 (no 404) con el mensaje literal "UserNotFound":
// es una decisión deliberada de compatibilidad con los clientes existentes.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ApiResponse
// @Router       /api/user/ [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ApiResponse
// @Router       /api/user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "InvalidId")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.OK(out))
}

// ChangeStatus godoc
// @Summary      Invertir el status (activo/inactivo) de un usuario
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.ApiResponse
// @Failure      400  {object}  dto.ApiResponse
// @Router       /api/user/{id} [patch]
func (h *UserHandler) ChangeStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "InvalidId")
	}
	out, err := h.uc.ToggleStatus(c.Context(), id)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar un usuario (username, avatar, roles y persona)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Parche del usuario"
// @Success      200   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ApiResponse
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return badRequest(c, "InvalidId")
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "InvalidBody")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.OK(out))
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// mapError traduce errores de dominio al sobre de error; cualquier otro fallo
// (la transacción ya hizo rollback) sale como 500 genérico.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return badRequest(c, "UserNotFound")
	case errors.Is(err, domain.ErrRoleNotFound):
		return badRequest(c, "RoleNotFound")
	case errors.Is(err, domain.ErrPersonMissing):
		return badRequest(c, "PersonMissing")
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "InvalidInput")
	case errors.Is(err, domain.ErrDuplicate):
		return badRequest(c, "Duplicate")
	default:
		return internalError(c, err)
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("BAD_REQUEST", message))
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL_SERVER_ERROR", err.Error()))
}
