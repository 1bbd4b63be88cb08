package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/stockypocky/sp-api/internal/application/dto"
	stockapp "github.com/stockypocky/sp-api/internal/application/stock"
	"github.com/stockypocky/sp-api/internal/application/usecase"
	"github.com/stockypocky/sp-api/internal/domain"
)

// ItemHandler maneja las peticiones HTTP de items y sus subrutas de stock (protegido).
type ItemHandler struct {
	uc      *usecase.ItemUseCase
	stockUC *stockapp.AdjustUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, stockUC *stockapp.AdjustUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, stockUC: stockUC}
}

// Create godoc
// @Summary      Crear item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "name, brand, unit, category_id, ..."
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("name is required"))
	}
	item, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(item))
}

// List godoc
// @Summary      Listar items del usuario
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        category_id  query  int   false  "Filtrar por categoría"
// @Param        is_favorite  query  bool  false  "Filtrar favoritos"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var categoryID *int64
	if raw := c.Query("category_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid category_id"))
		}
		categoryID = &v
	}
	var isFavorite *bool
	if raw := c.Query("is_favorite"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid is_favorite"))
		}
		isFavorite = &v
	}
	list, err := h.uc.List(GetUserID(c), categoryID, isFavorite)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(list))
}

// GetByID godoc
// @Summary      Obtener item por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Item ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	item, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Item not found"))
	}
	return c.JSON(dto.OK(item))
}

// Update godoc
// @Summary      Actualizar item
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "Item ID"
// @Param        body  body  dto.ItemRequest  true  "campos a sobrescribir"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	item, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Item not found"))
	}
	return c.JSON(dto.OK(item))
}

// Delete godoc
// @Summary      Eliminar item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Item ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	item, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Item not found"))
	}
	return c.JSON(dto.OK(item))
}

// GetStock godoc
// @Summary      Obtener stock del item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Item ID"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id}/stock [get]
func (h *ItemHandler) GetStock(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	stock, err := h.stockUC.GetByItem(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	if stock == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Stock not found"))
	}
	return c.JSON(dto.OK(stock))
}

// UpdateStock godoc
// @Summary      Ajustar stock del item
// @Description  Aplica increase/decrease/manual sobre la cantidad y registra la
//               entrada de historial con el delta, en una sola transacción.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "Item ID"
// @Param        body  body  dto.UpdateStockRequest  true  "action, quantity, threshold, location, reason, memo"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id}/stock [put]
func (h *ItemHandler) UpdateStock(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	out, err := h.stockUC.Adjust(c.Context(), GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid action"))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Stock not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(out))
}

// ListStockHistory godoc
// @Summary      Historial de stock del item
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "Item ID"
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/v1/items/{id}/stock-history [get]
func (h *ItemHandler) ListStockHistory(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	list, err := h.stockUC.HistoryByItem(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.JSON(dto.OK(list))
}

// CreateStockHistory godoc
// @Summary      Registrar entrada manual de historial
// @Description  Inserta una entrada en el libro sin modificar la cantidad en stock.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "Item ID"
// @Param        body  body  dto.CreateStockHistoryRequest  true  "change, reason, memo"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id}/stock-history [post]
func (h *ItemHandler) CreateStockHistory(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid id"))
	}
	var in dto.CreateStockHistoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}
	entry, err := h.stockUC.CreateHistory(GetUserID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("reason is required"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("db_error"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(entry))
}
