package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/nevera-pro/internal/application/dto"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain"
)

// PantryHandler maneja las peticiones HTTP del inventario (protegido).
type PantryHandler struct {
	uc *apppantry.UseCase
}

// NewPantryHandler construye el handler.
func NewPantryHandler(uc *apppantry.UseCase) *PantryHandler {
	return &PantryHandler{uc: uc}
}

// ListRows godoc
// @Summary      Filas agregadas del inventario
// @Tags         pantry
// @Security     Bearer
// @Produce      json
// @Param        storage  query  string  false  "Ubicación (fridge|freezer|pantry|condiment). Vacío = todas."
// @Success      200  {array}   dto.RowDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pantry/rows [get]
func (h *PantryHandler) ListRows(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	rows, err := h.uc.ListRows(c.Context(), userID, c.Query("storage"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(rows),
		"rows":  rows,
	})
}

// Adjust godoc
// @Summary      Ajustar cantidad de una fila (+1 reponer / -1 consumir)
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "identidad de la fila + delta"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pantry/rows/adjust [post]
func (h *PantryHandler) Adjust(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Adjust(c.Context(), userID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "ajuste aplicado"})
}

// CreateBatch godoc
// @Summary      Alta manual de un lote
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "name, amount, unit, storage, purchase_date, shelf_life"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pantry/batches [post]
func (h *PantryHandler) CreateBatch(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddBatch(c.Context(), userID, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y amount debe ser mayor que cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "lote registrado"})
}

// QuickAdd godoc
// @Summary      Alta rápida desde el catálogo (un clic = un lote de 1)
// @Tags         pantry
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuickAddRequest  true  "name del template"
// @Success      201   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pantry/quick-add [post]
func (h *PantryHandler) QuickAdd(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.QuickAddRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.QuickAdd(c.Context(), userID, in.Name); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el template no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "lote registrado"})
}

// ListTemplates godoc
// @Summary      Catálogo de alta rápida (integrados + personalizados)
// @Tags         pantry
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TemplateDTO
// @Router       /api/pantry/templates [get]
func (h *PantryHandler) ListTemplates(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	tpls, err := h.uc.Templates(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":     len(tpls),
		"templates": tpls,
	})
}

// DeleteTemplate godoc
// @Summary      Quitar un template personalizado del catálogo
// @Tags         pantry
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "nombre del template"
// @Success      200   {object}  map[string]string
// @Router       /api/pantry/templates/{name} [delete]
func (h *PantryHandler) DeleteTemplate(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	name := c.Params("name")
	if err := h.uc.RemoveTemplate(c.Context(), userID, name); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "template eliminado"})
}

// ClearAll godoc
// @Summary      Vaciar el inventario completo
// @Tags         pantry
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/pantry/batches [delete]
func (h *PantryHandler) ClearAll(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.ClearAll(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "inventario vaciado"})
}
