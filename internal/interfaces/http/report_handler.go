package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/nevera-pro/internal/application/dto"
	apppantry "github.com/tu-usuario/nevera-pro/internal/application/pantry"
)

// ReportHandler maneja informes y exportaciones (protegido).
type ReportHandler struct {
	uc *apppantry.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *apppantry.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExpiringPDF godoc
// @Summary      Informe "caduca pronto" en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pantry/reports/expiring [get]
func (h *ReportHandler) ExpiringPDF(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.uc.ExpiringReport(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("caduca-pronto-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ExportXML godoc
// @Summary      Exportar el inventario completo en XML (backup)
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/pantry/export [get]
func (h *ReportHandler) ExportXML(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	xmlBytes, err := h.uc.ExportXML(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.xml", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}
