package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/estadisticas.
type DashboardStatsDTO struct {
	// Facturas pagadas separadas por flujo
	PagadasCobros int64 `json:"pagadas_cobros"` // emitidas a clientes
	PagadasPagos  int64 `json:"pagadas_pagos"`  // recibidas de proveedores

	// Facturas pagadas agrupadas por mes de emisión
	PagadasPorMes []MonthlyPaidDTO `json:"pagadas_por_mes"`

	// Facturas Overdue con vencimiento en el mes en curso
	VencidasEsteMes int64 `json:"vencidas_este_mes"`

	// Comparativa de flujos: montos pagados. Cero cuando no hay datos, nunca null.
	Pagos  decimal.Decimal `json:"pagos"`
	Cobros decimal.Decimal `json:"cobros"`
}

// MonthlyPaidDTO agregado mensual de facturas pagadas.
type MonthlyPaidDTO struct {
	Mes      string          `json:"mes"` // YYYY-MM
	Cantidad int64           `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

// OverdueCountDTO respuesta de notificaciones / vencidas-count.
// Cuenta facturas Pending ya vencidas por fecha (aún sin sincronizar su estado).
type OverdueCountDTO struct {
	Vencidas int64 `json:"vencidas"`
}
