// Package analytics contiene los casos de uso de agregación para el dashboard
// y los contadores de vencidas. Todas las operaciones son de solo lectura.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

// DashboardUseCase arma las estadísticas de facturación del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only e independientes);
// no accede directamente a la tabla de facturas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetEstadisticas construye el DashboardStatsDTO.
//
// Cuatro consultas en paralelo:
//  1. CountPaidByFlow   → pagadas por flujo
//  2. PaidByMonth       → pagadas agrupadas por mes
//  3. OverdueThisMonth  → vencidas del mes en curso
//  4. FlowComparison    → montos pagados vs cobrados
func (uc *DashboardUseCase) GetEstadisticas(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	type flowResult struct {
		res repository.PaidByFlowResult
		err error
	}
	type monthResult struct {
		res []repository.MonthlyPaidResult
		err error
	}
	type countResult struct {
		res int64
		err error
	}
	type comparisonResult struct {
		res repository.FlowComparisonResult
		err error
	}

	flowCh := make(chan flowResult, 1)
	monthCh := make(chan monthResult, 1)
	overdueCh := make(chan countResult, 1)
	comparisonCh := make(chan comparisonResult, 1)

	go func() {
		res, err := uc.analyticsRepo.CountPaidByFlow(ctx)
		flowCh <- flowResult{res, err}
	}()
	go func() {
		res, err := uc.analyticsRepo.PaidByMonth(ctx)
		monthCh <- monthResult{res, err}
	}()
	go func() {
		res, err := uc.analyticsRepo.OverdueThisMonth(ctx, now)
		overdueCh <- countResult{res, err}
	}()
	go func() {
		res, err := uc.analyticsRepo.FlowComparison(ctx)
		comparisonCh <- comparisonResult{res, err}
	}()

	flow := <-flowCh
	month := <-monthCh
	overdue := <-overdueCh
	comparison := <-comparisonCh

	if flow.err != nil {
		return nil, fmt.Errorf("dashboard: pagadas por flujo: %w", flow.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: pagadas por mes: %w", month.err)
	}
	if overdue.err != nil {
		return nil, fmt.Errorf("dashboard: vencidas del mes: %w", overdue.err)
	}
	if comparison.err != nil {
		return nil, fmt.Errorf("dashboard: comparativa de flujos: %w", comparison.err)
	}

	porMes := make([]dto.MonthlyPaidDTO, 0, len(month.res))
	for _, m := range month.res {
		porMes = append(porMes, dto.MonthlyPaidDTO{Mes: m.Mes, Cantidad: m.Cantidad, Monto: m.Monto})
	}

	return &dto.DashboardStatsDTO{
		PagadasCobros:   flow.res.Cobros,
		PagadasPagos:    flow.res.Pagos,
		PagadasPorMes:   porMes,
		VencidasEsteMes: overdue.res,
		Pagos:           comparison.res.Pagos,
		Cobros:          comparison.res.Cobros,
	}, nil
}

// ContarVencidas cuenta facturas Pending con vencimiento anterior a hoy.
// Es LA operación detrás de /facturas/notificaciones y /facturas/vencidas-count:
// ambos endpoints comparten este conteo para que nunca diverjan.
func (uc *DashboardUseCase) ContarVencidas(ctx context.Context) (*dto.OverdueCountDTO, error) {
	n, err := uc.analyticsRepo.OverdueCount(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("contar vencidas: %w", err)
	}
	return &dto.OverdueCountDTO{Vencidas: n}, nil
}
