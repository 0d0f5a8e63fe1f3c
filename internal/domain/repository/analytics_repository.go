package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaidByFlowResult conteo de facturas pagadas por flujo.
type PaidByFlowResult struct {
	Cobros int64 // facturas a clientes (flujo de cobro)
	Pagos  int64 // facturas de proveedores (flujo de pago)
}

// MonthlyPaidResult filas de la agrupación mensual de facturas pagadas.
// Mes viene en formato "YYYY-MM" según la fecha de emisión.
type MonthlyPaidResult struct {
	Mes      string
	Cantidad int64
	Monto    decimal.Decimal
}

// FlowComparisonResult suma de montos pagados por flujo. Sin filas las sumas
// son cero, nunca nulas.
type FlowComparisonResult struct {
	Pagos  decimal.Decimal // proveedor-flow
	Cobros decimal.Decimal // cliente-flow
}

// AnalyticsRepository define las consultas de lectura para el dashboard.
// Las implementaciones son read-only; cada consulta es un scan independiente.
type AnalyticsRepository interface {
	// CountPaidByFlow cuenta las facturas en estado Paid separadas por flujo.
	CountPaidByFlow(ctx context.Context) (PaidByFlowResult, error)

	// PaidByMonth agrupa las facturas Paid por mes de emisión: cantidad y monto.
	PaidByMonth(ctx context.Context) ([]MonthlyPaidResult, error)

	// OverdueThisMonth cuenta facturas Overdue cuyo vencimiento cae en el mes
	// calendario de `now`.
	OverdueThisMonth(ctx context.Context, now time.Time) (int64, error)

	// FlowComparison suma el monto pagado por flujo (pagos vs cobros).
	FlowComparison(ctx context.Context) (FlowComparisonResult, error)

	// OverdueCount cuenta facturas Pending con vencimiento estrictamente
	// anterior a `today`: vencidas de hecho pero cuyo estado almacenado aún
	// no fue sincronizado por el motor de penalización.
	OverdueCount(ctx context.Context, today time.Time) (int64, error)
}
