package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/application/usecase"
)

// ShoppingListHandler maneja las peticiones HTTP de la lista de compras (protegido).
type ShoppingListHandler struct {
	uc *usecase.ShoppingListUseCase
}

// NewShoppingListHandler construye el handler.
func NewShoppingListHandler(uc *usecase.ShoppingListUseCase) *ShoppingListHandler {
	return &ShoppingListHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar entrada a la lista de compras
// @Tags         shopping-list
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShoppingListRequest  true  "item_id, quantity"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-list [post]
func (h *ShoppingListHandler) Create(c *fiber.Ctx) error {
	var in dto.ShoppingListRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.ItemID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("item_id is required"))
	}
	entry, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(entry))
}

// List godoc
// @Summary      Listar la lista de compras del usuario
// @Tags         shopping-list
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/shopping-list [get]
func (h *ShoppingListHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(list))
}

// UpdateChecked godoc
// @Summary      Marcar/desmarcar entrada de la lista
// @Tags         shopping-list
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "Entry ID"
// @Param        body  body  dto.ShoppingListCheckRequest  true  "checked"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-list/{id} [put]
func (h *ShoppingListHandler) UpdateChecked(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.ShoppingListCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	entry, err := h.uc.UpdateChecked(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Entry not found"))
	}
	return c.JSON(dto.OK(entry))
}

// Delete godoc
// @Summary      Eliminar entrada de la lista
// @Tags         shopping-list
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-list/{id} [delete]
func (h *ShoppingListHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	entry, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if entry == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Entry not found"))
	}
	return c.JSON(dto.OK(entry))
}
