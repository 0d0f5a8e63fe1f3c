package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, numero_factura, cliente_id, proveedor_id,
	fecha_emision, fecha_vencimiento, monto_total, estado, created_at, updated_at`

// Create persiste una factura.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO facturas (id, numero_factura, cliente_id, proveedor_id, fecha_emision, fecha_vencimiento, monto_total, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.NumeroFactura, nullIfEmpty(inv.ClienteID), nullIfEmpty(inv.ProveedorID),
		inv.FechaEmision, inv.FechaVencimiento, inv.MontoTotal, inv.Estado,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: numero_factura %s", domain.ErrDuplicate, inv.NumeroFactura)
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM facturas WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return inv, nil
}

// List devuelve todas las facturas ordenadas por fecha de emisión.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM facturas ORDER BY fecha_emision, numero_factura`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update persiste todos los campos mutables de la factura.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	query := `
		UPDATE facturas
		SET numero_factura    = $2,
		    fecha_emision     = $3,
		    fecha_vencimiento = $4,
		    monto_total       = $5,
		    estado            = $6,
		    updated_at        = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.NumeroFactura, inv.FechaEmision, inv.FechaVencimiento,
		inv.MontoTotal, inv.Estado, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateEstado persiste solo el estado (write-through del motor de penalización).
func (r *InvoiceRepo) UpdateEstado(id, estado string, updatedAt time.Time) error {
	query := `UPDATE facturas SET estado = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, estado, updatedAt)
	if err != nil {
		return fmt.Errorf("update estado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.NumeroFactura, &inv.ClienteID, &inv.ProveedorID,
		&inv.FechaEmision, &inv.FechaVencimiento, &inv.MontoTotal, &inv.Estado,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
