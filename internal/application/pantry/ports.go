package pantry

import (
	"context"
	"time"

	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
	dompantry "github.com/tu-usuario/nevera-pro/internal/domain/pantry"
)

// ReportPDFGenerator puerto de generación del informe "caduca pronto" en PDF.
type ReportPDFGenerator interface {
	GenerateExpiringReport(ctx context.Context, rows []dompantry.Row, generatedAt time.Time) ([]byte, error)
}

// InventoryExporter puerto de exportación del inventario completo (backup).
type InventoryExporter interface {
	Export(records []entity.IngredientBatch, exportedAt time.Time) ([]byte, error)
}
