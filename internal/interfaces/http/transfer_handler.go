package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/nevera-pro/internal/application/dto"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain"
)

// TransferHandler maneja el diálogo de traslado entre ubicaciones (protegido).
type TransferHandler struct {
	uc *apppantry.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *apppantry.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Begin godoc
// @Summary      Abrir un traslado de fila entre ubicaciones
// @Description  Un gesto inválido (destino desconocido o igual al origen) no es
//
//	un error de la petición: se ignora y se responde el estado idle.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BeginTransferRequest  true  "fila origen + destino"
// @Success      200   {object}  dto.BeginTransferResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pantry/transfers [post]
func (h *TransferHandler) Begin(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BeginTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.BeginTransfer(c.Context(), userID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			// Gesto sin sentido: se ignora sin abrir traslado.
			return c.JSON(dto.BeginTransferResponse{State: h.uc.TransferState(userID)})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la fila no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// Confirm godoc
// @Summary      Confirmar el traslado pendiente con la cantidad elegida
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmTransferRequest  true  "quantity entera en [1, max_movable]"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pantry/transfers/confirm [post]
func (h *TransferHandler) Confirm(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ConfirmTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ConfirmTransfer(c.Context(), userID, in.Quantity); err != nil {
		if err == domain.ErrNoTransferPending {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_TRANSFER", Message: "no hay traslado pendiente"})
		}
		if err == domain.ErrInvalidInput {
			// El traslado sigue pendiente: la cantidad era inválida.
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser entera y estar entre 1 y max_movable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "traslado aplicado"})
}

// Cancel godoc
// @Summary      Cancelar el traslado pendiente (idempotente)
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/pantry/transfers/cancel [post]
func (h *TransferHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	h.uc.CancelTransfer(userID)
	return c.JSON(fiber.Map{"message": "traslado cancelado"})
}
