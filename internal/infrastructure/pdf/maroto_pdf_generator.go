// Package pdf implementa el comprobante gráfico de la factura con su estado
// de penalización vigente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: N° Factura  │  Estado + Fecha de emisión           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Cliente o Proveedor                            │
//	│  FECHAS: Emisión / Vencimiento / Días de mora                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Monto original / Penalización / TOTAL A PAGAR      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de mora                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appbilling "github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, data appbilling.InvoicePDFData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+data.Invoice.NumeroFactura, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contraparteRow(data))
	m.AddRows(fechasRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: N° de factura (izq) y estado + fecha de emisión (der).
func headerRow(data appbilling.InvoicePDFData) core.Row {
	inv := data.Invoice
	estadoColor := colorPrimary
	if data.Evaluation.Estado == entity.StatusOverdue {
		estadoColor = colorAlert
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(inv.NumeroFactura, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 7,
			}),
		),
		col.New(5).Add(
			text.New(data.Evaluation.Estado, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: estadoColor, Top: 1,
			}),
			text.New("Emitida: "+inv.FechaEmision.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// contraparteRow: cliente o proveedor según el flujo de la factura.
func contraparteRow(data appbilling.InvoicePDFData) core.Row {
	rotulo := "CLIENTE"
	if data.Invoice.EsDeProveedor() {
		rotulo = "PROVEEDOR"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(rotulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(data.RefNombre, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// fechasRow: emisión / vencimiento / días de mora en una sola línea.
func fechasRow(data appbilling.InvoicePDFData) core.Row {
	inv := data.Invoice
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Emisión: %s   |   Vencimiento: %s   |   Días de mora: %d",
				inv.FechaEmision.Format("02/01/2006"),
				inv.FechaVencimiento.Format("02/01/2006"),
				data.Evaluation.DiasMora,
			), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// totalsRow: monto original, penalización acumulada y total a pagar.
func totalsRow(data appbilling.InvoicePDFData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	ev := data.Evaluation
	return row.New(26).Add(
		col.New(3), // espacio izquierdo
		col.New(4).Add(
			label("Monto original:"),
			label("Penalización por mora:"),
			grandLabel("TOTAL A PAGAR:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(data.Invoice.MontoTotal.StringFixed(2))),
			value("$"+formatMoney(ev.Penalizacion.StringFixed(2))),
			grandValue("$"+formatMoney(ev.TotalConPenalizacion.StringFixed(2))),
		),
		col.New(2), // espacio derecho
	)
}

// footerRow: leyenda de la regla de mora.
func footerRow(data appbilling.InvoicePDFData) core.Row {
	leyenda := "Documento generado con el estado vigente de la factura a la fecha de exportación."
	if data.Evaluation.DiasMora > 0 {
		leyenda = fmt.Sprintf(
			"Factura en mora: la penalización corresponde al 1%% del monto por día vencido (%d días).",
			data.Evaluation.DiasMora,
		)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(leyenda, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string
// numérico. Ej: "25000.00" → "25.000,00"
func formatMoney(s string) string {
	entero, dec := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			entero, dec = s[:i], s[i+1:]
			break
		}
	}
	n := len(entero)
	if n <= 3 {
		if dec == "" {
			return entero
		}
		return entero + "," + dec
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, entero[i])
	}
	if dec != "" {
		buf = append(buf, ',')
		buf = append(buf, dec...)
	}
	return string(buf)
}
