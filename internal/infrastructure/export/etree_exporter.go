// Package export serializa el inventario completo a XML para copias de
// seguridad portables entre dispositivos.
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/nevera-pro/internal/application/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain/entity"
)

var _ pantry.InventoryExporter = (*EtreeExporter)(nil)

// EtreeExporter implementa pantry.InventoryExporter con beevik/etree.
// Exporta los lotes crudos, no las filas agregadas: el backup debe poder
// restaurarse sin pérdida (cada lote conserva su fecha y vida útil propias).
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// Export serializa la lista de lotes a un documento XML indentado.
func (e *EtreeExporter) Export(records []entity.IngredientBatch, exportedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Inventory")
	root.CreateAttr("exportedAt", exportedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("batchCount", fmt.Sprintf("%d", len(records)))

	for _, b := range records {
		el := root.CreateElement("Batch")
		el.CreateAttr("id", b.ID)
		el.CreateElement("Name").SetText(b.Name)
		el.CreateElement("Amount").SetText(b.Amount.String())
		el.CreateElement("Unit").SetText(b.Unit)
		el.CreateElement("Storage").SetText(string(b.Storage))
		el.CreateElement("PurchaseDate").SetText(b.PurchaseDate)
		el.CreateElement("ShelfLife").SetText(fmt.Sprintf("%d", b.ShelfLife))
		if b.BaseShelfLife != nil {
			el.CreateElement("BaseShelfLife").SetText(fmt.Sprintf("%d", *b.BaseShelfLife))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
