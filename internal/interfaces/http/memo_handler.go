package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/application/usecase"
)

// MemoHandler maneja las peticiones HTTP de memos (protegido).
type MemoHandler struct {
	uc *usecase.MemoUseCase
}

// NewMemoHandler construye el handler.
func NewMemoHandler(uc *usecase.MemoUseCase) *MemoHandler {
	return &MemoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear memo
// @Tags         memos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMemoRequest  true  "title, content, type, is_done, tags"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/memos [post]
func (h *MemoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("title is required"))
	}
	memo, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(memo))
}

// List godoc
// @Summary      Listar memos del usuario
// @Tags         memos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/memos [get]
func (h *MemoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(list))
}

// GetByID godoc
// @Summary      Obtener memo por ID
// @Tags         memos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Memo ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/memos/{id} [get]
func (h *MemoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	memo, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if memo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Memo not found"))
	}
	return c.JSON(dto.OK(memo))
}

// Update godoc
// @Summary      Actualizar memo
// @Tags         memos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "Memo ID"
// @Param        body  body  dto.CreateMemoRequest  true  "title, content, type, is_done, tags"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/memos/{id} [put]
func (h *MemoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.CreateMemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	memo, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if memo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Memo not found"))
	}
	return c.JSON(dto.OK(memo))
}

// Delete godoc
// @Summary      Eliminar memo
// @Tags         memos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Memo ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/memos/{id} [delete]
func (h *MemoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	memo, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if memo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Memo not found"))
	}
	return c.JSON(dto.OK(memo))
}
