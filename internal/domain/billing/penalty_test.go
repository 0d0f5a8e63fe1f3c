package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-pro/internal/domain/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func facturaCon(monto float64, vencimiento time.Time, estado string) *entity.Invoice {
	prov := "prov-1"
	return &entity.Invoice{
		ID:               "inv-1",
		NumeroFactura:    "F-001",
		ProveedorID:      &prov,
		FechaEmision:     vencimiento.AddDate(0, -1, 0),
		FechaVencimiento: vencimiento,
		MontoTotal:       decimal.NewFromFloat(monto),
		Estado:           estado,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate
// ──────────────────────────────────────────────────────────────────────────────

// Una factura pagada nunca acumula penalización, sin importar qué tan vencida esté.
func TestEvaluate_PagadaNoAcumulaPenalizacion(t *testing.T) {
	hoy := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	inv := facturaCon(1000, hoy.AddDate(0, 0, -90), entity.StatusPaid)

	ev := billing.Evaluate(inv, hoy)

	assert.Equal(t, entity.StatusPaid, ev.Estado, "el estado de una factura pagada no cambia")
	assert.True(t, ev.Penalizacion.IsZero(), "pagada => penalización cero")
	assert.True(t, ev.TotalConPenalizacion.Equal(inv.MontoTotal), "total = monto original")
}

// Factura de 1000 vencida hace 5 días: penalización 1000 × 1% × 5 = 50, total 1050.
func TestEvaluate_CincoDiasDeMora(t *testing.T) {
	hoy := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	inv := facturaCon(1000, hoy.AddDate(0, 0, -5), entity.StatusPending)

	ev := billing.Evaluate(inv, hoy)

	assert.Equal(t, entity.StatusOverdue, ev.Estado)
	assert.EqualValues(t, 5, ev.DiasMora)
	assert.True(t, ev.Penalizacion.Equal(decimal.NewFromInt(50)),
		"penalización esperada 50, obtenida %s", ev.Penalizacion)
	assert.True(t, ev.TotalConPenalizacion.Equal(decimal.NewFromInt(1050)),
		"total esperado 1050, obtenido %s", ev.TotalConPenalizacion)
}

// Vencimiento hoy o futuro: sin penalización y el estado queda en Pending.
func TestEvaluate_SinMora(t *testing.T) {
	hoy := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	casos := []struct {
		nombre      string
		vencimiento time.Time
	}{
		{"vence hoy", hoy},
		{"vence mañana", hoy.AddDate(0, 0, 1)},
		{"vence el próximo mes", hoy.AddDate(0, 1, 0)},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			inv := facturaCon(500, c.vencimiento, entity.StatusPending)
			ev := billing.Evaluate(inv, hoy)

			assert.Equal(t, entity.StatusPending, ev.Estado)
			assert.True(t, ev.Penalizacion.IsZero())
			assert.True(t, ev.TotalConPenalizacion.Equal(inv.MontoTotal))
		})
	}
}

// Una factura Overdue que se reevalúa sigue acumulando mora linealmente.
func TestEvaluate_AcumulacionLinealSinTope(t *testing.T) {
	hoy := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	inv := facturaCon(200, hoy.AddDate(0, 0, -365), entity.StatusOverdue)

	ev := billing.Evaluate(inv, hoy)

	require.Equal(t, entity.StatusOverdue, ev.Estado)
	assert.EqualValues(t, 365, ev.DiasMora)
	// 200 × 0.01 × 365 = 730: la penalización puede superar el monto original.
	assert.True(t, ev.Penalizacion.Equal(decimal.NewFromInt(730)))
}

// La hora del día no afecta el conteo: se comparan fechas truncadas a medianoche.
func TestDaysOverdue_TruncaAMedianoche(t *testing.T) {
	vencimiento := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	hoy := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.EqualValues(t, 1, billing.DaysOverdue(vencimiento, hoy),
		"un minuto después de medianoche ya cuenta como un día completo de mora")
}

func TestDaysOverdue_VencimientoFuturoEsCero(t *testing.T) {
	hoy := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.EqualValues(t, 0, billing.DaysOverdue(hoy.AddDate(0, 0, 3), hoy))
	assert.EqualValues(t, 0, billing.DaysOverdue(hoy, hoy), "mismo día no es mora")
}
