package pantry

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
	dompantry "github.com/tu-usuario/nevera-pro/internal/domain/pantry"
	"github.com/tu-usuario/nevera-pro/internal/domain/repository"
)

// expiringThresholdDays una fila entra al informe si le quedan este número de
// días o menos (mismo umbral que el estado warning).
const expiringThresholdDays = 3

// ReportUseCase genera el informe "caduca pronto" (PDF) y la exportación XML
// del inventario completo.
type ReportUseCase struct {
	batches  repository.BatchRepository
	agg      *dompantry.Aggregator
	pdf      ReportPDFGenerator
	exporter InventoryExporter
	now      Clock
}

// NewReportUseCase construye el caso de uso de informes.
func NewReportUseCase(batches repository.BatchRepository, agg *dompantry.Aggregator, pdf ReportPDFGenerator, exporter InventoryExporter, now Clock) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{batches: batches, agg: agg, pdf: pdf, exporter: exporter, now: now}
}

// ExpiringReport PDF con las filas no congeladas que caducan en 3 días o menos
// (incluidas las ya caducadas), por orden de urgencia.
func (uc *ReportUseCase) ExpiringReport(ctx context.Context, userID string) ([]byte, error) {
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := uc.now()

	var urgent []dompantry.Row
	for _, r := range uc.agg.Rows(records, today) {
		if r.Status == freshness.StatusFrozen {
			continue
		}
		if r.DaysLeft <= expiringThresholdDays {
			urgent = append(urgent, r)
		}
	}
	sort.SliceStable(urgent, func(i, j int) bool { return urgent[i].DaysLeft < urgent[j].DaysLeft })
	return uc.pdf.GenerateExpiringReport(ctx, urgent, today)
}

// ExportXML exportación completa del inventario del usuario (backup portable).
func (uc *ReportUseCase) ExportXML(ctx context.Context, userID string) ([]byte, error) {
	records, err := uc.batches.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.Export(records, uc.now())
}
