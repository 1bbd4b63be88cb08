package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stockypocky/sp-api/internal/application/dto"
	"github.com/stockypocky/sp-api/internal/application/shopping"
	"github.com/stockypocky/sp-api/internal/domain"
)

// ShoppingRecordHandler maneja compras y resúmenes de gasto (protegido).
type ShoppingRecordHandler struct {
	uc       *shopping.RecordUseCase
	spending *shopping.SpendingUseCase
}

// NewShoppingRecordHandler construye el handler.
func NewShoppingRecordHandler(uc *shopping.RecordUseCase, spending *shopping.SpendingUseCase) *ShoppingRecordHandler {
	return &ShoppingRecordHandler{uc: uc, spending: spending}
}

// Create godoc
// @Summary      Registrar compra
// @Description  Inserta la compra, sube el stock del item (reason "shopping") y
//               elimina la entrada pendiente de la lista, todo en una transacción.
// @Tags         shopping-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShoppingRecordRequest  true  "item_id, quantity, price, store, bought_at"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-records [post]
func (h *ShoppingRecordHandler) Create(c *fiber.Ctx) error {
	var in dto.ShoppingRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	record, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("store is required"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Stock not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(record))
}

// List godoc
// @Summary      Listar compras del usuario
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/shopping-records [get]
func (h *ShoppingRecordHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(list))
}

// GetByID godoc
// @Summary      Obtener compra por ID
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Record ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-records/{id} [get]
func (h *ShoppingRecordHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	record, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Record not found"))
	}
	return c.JSON(dto.OK(record))
}

// Update godoc
// @Summary      Actualizar compra
// @Description  Sobrescribe lo enviado y re-ajusta el stock con la acción y reason del body.
// @Tags         shopping-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                              true  "Record ID"
// @Param        body  body  dto.ShoppingRecordUpdateRequest  true  "campos + action, reason"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-records/{id} [put]
func (h *ShoppingRecordHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.ShoppingRecordUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	record, err := h.uc.Update(c.Context(), GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid action"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Stock not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Record not found"))
	}
	return c.JSON(dto.OK(record))
}

// Delete godoc
// @Summary      Eliminar compra
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Record ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/shopping-records/{id} [delete]
func (h *ShoppingRecordHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	record, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Record not found"))
	}
	return c.JSON(dto.OK(record))
}

// MonthlySummary godoc
// @Summary      Gasto por mes
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/shopping-records/summary/monthly [get]
func (h *ShoppingRecordHandler) MonthlySummary(c *fiber.Ctx) error {
	results, err := h.spending.Monthly(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(results))
}

// ItemSummary godoc
// @Summary      Gasto por item
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/shopping-records/summary/items [get]
func (h *ShoppingRecordHandler) ItemSummary(c *fiber.Ctx) error {
	results, err := h.spending.ByItem(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(results))
}

// CategorySummary godoc
// @Summary      Gasto por categoría
// @Tags         shopping-records
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/shopping-records/summary/categories [get]
func (h *ShoppingRecordHandler) CategorySummary(c *fiber.Ctx) error {
	results, err := h.spending.ByCategory(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(results))
}
