package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-pro/internal/application/analytics"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

// fakeAnalyticsRepo implementación en memoria del repositorio de agregación.
type fakeAnalyticsRepo struct {
	flow       repository.PaidByFlowResult
	byMonth    []repository.MonthlyPaidResult
	thisMonth  int64
	comparison repository.FlowComparisonResult
	overdue    int64

	overdueCalls int
}

func (r *fakeAnalyticsRepo) CountPaidByFlow(context.Context) (repository.PaidByFlowResult, error) {
	return r.flow, nil
}

func (r *fakeAnalyticsRepo) PaidByMonth(context.Context) ([]repository.MonthlyPaidResult, error) {
	return r.byMonth, nil
}

func (r *fakeAnalyticsRepo) OverdueThisMonth(context.Context, time.Time) (int64, error) {
	return r.thisMonth, nil
}

func (r *fakeAnalyticsRepo) FlowComparison(context.Context) (repository.FlowComparisonResult, error) {
	return r.comparison, nil
}

func (r *fakeAnalyticsRepo) OverdueCount(context.Context, time.Time) (int64, error) {
	r.overdueCalls++
	return r.overdue, nil
}

// Con la base vacía la comparativa de flujos reporta ceros, nunca null.
func TestGetEstadisticas_BaseVaciaReportaCeros(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		comparison: repository.FlowComparisonResult{Pagos: decimal.Zero, Cobros: decimal.Zero},
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetEstadisticas(context.Background())

	require.NoError(t, err)
	assert.True(t, stats.Pagos.IsZero(), "pagos debe ser cero, no null")
	assert.True(t, stats.Cobros.IsZero(), "cobros debe ser cero, no null")
	assert.Zero(t, stats.PagadasCobros)
	assert.Zero(t, stats.PagadasPagos)
	assert.Empty(t, stats.PagadasPorMes)
}

func TestGetEstadisticas_MapeaTodosLosAgregados(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		flow:      repository.PaidByFlowResult{Cobros: 7, Pagos: 3},
		thisMonth: 4,
		byMonth: []repository.MonthlyPaidResult{
			{Mes: "2026-01", Cantidad: 2, Monto: decimal.NewFromInt(3500)},
			{Mes: "2026-02", Cantidad: 1, Monto: decimal.NewFromInt(900)},
		},
		comparison: repository.FlowComparisonResult{
			Pagos:  decimal.NewFromInt(1200),
			Cobros: decimal.NewFromInt(4400),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	stats, err := uc.GetEstadisticas(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 7, stats.PagadasCobros)
	assert.EqualValues(t, 3, stats.PagadasPagos)
	assert.EqualValues(t, 4, stats.VencidasEsteMes)
	require.Len(t, stats.PagadasPorMes, 2)
	assert.Equal(t, "2026-01", stats.PagadasPorMes[0].Mes)
	assert.True(t, stats.Pagos.Equal(decimal.NewFromInt(1200)))
	assert.True(t, stats.Cobros.Equal(decimal.NewFromInt(4400)))
}

// Los endpoints de notificaciones y vencidas-count comparten ContarVencidas:
// llamadas sucesivas con los mismos datos devuelven el mismo conteo.
func TestContarVencidas_MismoConteoParaAmbosEndpoints(t *testing.T) {
	repo := &fakeAnalyticsRepo{overdue: 6}
	uc := analytics.NewDashboardUseCase(repo)

	notificaciones, err := uc.ContarVencidas(context.Background())
	require.NoError(t, err)
	vencidasCount, err := uc.ContarVencidas(context.Background())
	require.NoError(t, err)

	assert.Equal(t, notificaciones.Vencidas, vencidasCount.Vencidas)
	assert.EqualValues(t, 6, notificaciones.Vencidas)
	assert.Equal(t, 2, repo.overdueCalls, "ambos endpoints usan la misma operación del repositorio")
}
