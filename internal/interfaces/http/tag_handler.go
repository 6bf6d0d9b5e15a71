package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunstone-app/sunstone-api/internal/application/dto"
	"github.com/sunstone-app/sunstone-api/internal/application/usecase"
)

// TagHandler maneja tags y asignaciones manuales.
type TagHandler struct {
	uc *usecase.TagUseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// List godoc
// @Summary      Listar tags del tenant
// @Description  Siembra "New Client" y "Repeat Client" si el tenant no tiene tags automáticos.
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TagResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tag
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTagRequest  true  "nombre único por tenant"
// @Success      201   {object}  dto.TagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tag (parcial)
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "ID del tag"
// @Param        body  body      dto.UpdateTagRequest  true  "solo los campos presentes"
// @Success      200   {object}  dto.TagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [patch]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTagRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetTenantID(c), param(c, "id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tag (y sus asignaciones)
// @Tags         tags
// @Security     Bearer
// @Param        id   path  string  true  "ID del tag"
// @Success      204
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetTenantID(c), param(c, "id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign godoc
// @Summary      Asignar tag a cliente
// @Description  Idempotente: assigned=false si ya estaba asignado.
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del cliente"
// @Param        tagId  path  string  true  "ID del tag"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clients/{id}/tags/{tagId} [post]
func (h *TagHandler) Assign(c *fiber.Ctx) error {
	assigned, err := h.uc.Assign(c.Context(), GetTenantID(c), param(c, "id"), param(c, "tagId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"assigned": assigned})
}

// Unassign godoc
// @Summary      Retirar tag de cliente
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del cliente"
// @Param        tagId  path  string  true  "ID del tag"
// @Success      200  {object}  map[string]bool
// @Router       /api/clients/{id}/tags/{tagId} [delete]
func (h *TagHandler) Unassign(c *fiber.Ctx) error {
	removed, err := h.uc.Unassign(c.Context(), GetTenantID(c), param(c, "id"), param(c, "tagId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}
