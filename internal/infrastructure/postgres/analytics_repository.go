package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación para el dashboard. Read-only,
// siempre sobre el pool (nunca dentro de una tx).
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

func (r *AnalyticsRepo) CountPaidByFlow(ctx context.Context) (repository.PaidByFlowResult, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE cliente_id IS NOT NULL),
		       COUNT(*) FILTER (WHERE proveedor_id IS NOT NULL)
		FROM facturas
		WHERE estado = $1`
	var res repository.PaidByFlowResult
	err := r.pool.QueryRow(ctx, query, entity.StatusPaid).Scan(&res.Cobros, &res.Pagos)
	if err != nil {
		return repository.PaidByFlowResult{}, fmt.Errorf("count pagadas por flujo: %w", err)
	}
	return res, nil
}

func (r *AnalyticsRepo) PaidByMonth(ctx context.Context) ([]repository.MonthlyPaidResult, error) {
	query := `
		SELECT to_char(fecha_emision, 'YYYY-MM') AS mes,
		       COUNT(*),
		       COALESCE(SUM(monto_total), 0)
		FROM facturas
		WHERE estado = $1
		GROUP BY mes
		ORDER BY mes`
	rows, err := r.pool.Query(ctx, query, entity.StatusPaid)
	if err != nil {
		return nil, fmt.Errorf("pagadas por mes: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyPaidResult
	for rows.Next() {
		var m repository.MonthlyPaidResult
		if err := rows.Scan(&m.Mes, &m.Cantidad, &m.Monto); err != nil {
			return nil, fmt.Errorf("scan mes: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) OverdueThisMonth(ctx context.Context, now time.Time) (int64, error) {
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, 1, 0)
	query := `
		SELECT COUNT(*)
		FROM facturas
		WHERE estado = $1
		  AND fecha_vencimiento >= $2
		  AND fecha_vencimiento < $3`
	var n int64
	err := r.pool.QueryRow(ctx, query, entity.StatusOverdue, inicio, fin).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("vencidas del mes: %w", err)
	}
	return n, nil
}

func (r *AnalyticsRepo) FlowComparison(ctx context.Context) (repository.FlowComparisonResult, error) {
	query := `
		SELECT COALESCE(SUM(monto_total) FILTER (WHERE proveedor_id IS NOT NULL), 0),
		       COALESCE(SUM(monto_total) FILTER (WHERE cliente_id IS NOT NULL), 0)
		FROM facturas
		WHERE estado = $1`
	var res repository.FlowComparisonResult
	err := r.pool.QueryRow(ctx, query, entity.StatusPaid).Scan(&res.Pagos, &res.Cobros)
	if err != nil {
		return repository.FlowComparisonResult{}, fmt.Errorf("comparativa de flujos: %w", err)
	}
	return res, nil
}

func (r *AnalyticsRepo) OverdueCount(ctx context.Context, today time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM facturas
		WHERE estado = $1 AND fecha_vencimiento < $2`
	var n int64
	err := r.pool.QueryRow(ctx, query, entity.StatusPending, today).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("conteo de vencidas: %w", err)
	}
	return n, nil
}
