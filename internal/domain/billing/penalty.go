// Package billing contiene las reglas puras del ciclo de vida de la factura:
// mora, penalización y estado derivado. No toca persistencia; quien llama
// decide si el estado derivado se escribe de vuelta.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// Tasa de penalización por mora: 1% del monto total por cada día vencido.
// La acumulación es lineal y sin tope.
var penaltyRatePerDay = decimal.NewFromFloat(0.01)

// Evaluation es el resultado de evaluar una factura contra una fecha de referencia.
type Evaluation struct {
	Estado               string
	DiasMora             int64
	Penalizacion         decimal.Decimal
	TotalConPenalizacion decimal.Decimal
}

// Evaluate deriva el estado y la penalización de una factura a la fecha `today`.
//
// Reglas:
//   - Paid: estado intacto, penalización cero, total = monto.
//   - Con mora (vencimiento < today en días completos): penalización =
//     monto × 1% × días de mora, estado Overdue.
//   - Sin mora: penalización cero, estado Pending.
//
// La función es pura; la sincronización del estado almacenado (write-through)
// la realiza el caso de uso que la invoca.
func Evaluate(inv *entity.Invoice, today time.Time) Evaluation {
	if inv.Estado == entity.StatusPaid {
		return Evaluation{
			Estado:               entity.StatusPaid,
			DiasMora:             0,
			Penalizacion:         decimal.Zero,
			TotalConPenalizacion: inv.MontoTotal,
		}
	}

	dias := DaysOverdue(inv.FechaVencimiento, today)
	if dias <= 0 {
		return Evaluation{
			Estado:               entity.StatusPending,
			DiasMora:             0,
			Penalizacion:         decimal.Zero,
			TotalConPenalizacion: inv.MontoTotal,
		}
	}

	penalizacion := inv.MontoTotal.Mul(penaltyRatePerDay).Mul(decimal.NewFromInt(dias))
	return Evaluation{
		Estado:               entity.StatusOverdue,
		DiasMora:             dias,
		Penalizacion:         penalizacion,
		TotalConPenalizacion: inv.MontoTotal.Add(penalizacion),
	}
}

// DaysOverdue cuenta los días completos transcurridos entre el vencimiento y
// la fecha de referencia. Devuelve 0 si el vencimiento es hoy o futuro.
// Ambas fechas se truncan a medianoche para que la hora del día no afecte el conteo.
func DaysOverdue(vencimiento, today time.Time) int64 {
	v := truncateToDay(vencimiento)
	t := truncateToDay(today)
	if !t.After(v) {
		return 0
	}
	return int64(t.Sub(v).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
