// Package pdf implementa la generación del informe "Caduca pronto" en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Ubicación | Cant | Caduca | Días | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: recuento de filas + nota                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/nevera-pro/internal/domain/freshness"
	dompantry "github.com/tu-usuario/nevera-pro/internal/domain/pantry"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 110, Blue: 80}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorWarning = &props.Color{Red: 190, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa pantry.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateExpiringReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateExpiringReport(
	_ context.Context,
	rows []dompantry.Row,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe Caduca Pronto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(rows) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Nada caduca en los próximos 3 días.", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 4,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(rows) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Nevera Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario doméstico de perecederos", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CADUCA PRONTO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorDanger, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de filas urgentes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 4, align.Left),
		h("Ubicación", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Caduca", 2, align.Center),
		h("Días", 1, align.Center),
		h("Estado", 2, align.Center),
	)
}

// tableDetailRows: una fila por artículo urgente.
func tableDetailRows(rows []dompantry.Row) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				r.Name+" ("+r.Unit+")",
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				storageLabel(string(r.Storage)),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Amount.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(r.ExpiryDate, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", r.DaysLeft),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: daysColor(r.DaysLeft)},
			)),
			col.New(2).Add(text.New(
				statusLabel(r.Status),
				props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center,
					Top: 1, Color: statusColor(r.Status),
				},
			)),
		))
	}
	return result
}

// footerRow: recuento y nota.
func footerRow(count int) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d artículo(s) caducan en 3 días o menos.", count), props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 1,
		}),
		text.New(
			"Los artículos del congelador no aparecen en este informe: su caducidad está en pausa.",
			props.Text{Size: 6.5, Color: colorGray, Top: 6},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func storageLabel(s string) string {
	switch s {
	case "fridge":
		return "Nevera"
	case "freezer":
		return "Congelador"
	case "pantry":
		return "Despensa"
	case "condiment":
		return "Condimentos"
	}
	return s
}

func statusLabel(s freshness.Status) string {
	switch s {
	case freshness.StatusExpiring:
		return "URGENTE"
	case freshness.StatusWarning:
		return "PRONTO"
	}
	return string(s)
}

func daysColor(days int) *props.Color {
	if days <= 1 {
		return colorDanger
	}
	return colorWarning
}

func statusColor(status freshness.Status) *props.Color {
	if status == freshness.StatusExpiring {
		return colorDanger
	}
	return colorWarning
}
