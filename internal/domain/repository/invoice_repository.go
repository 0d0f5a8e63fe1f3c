package repository

import (
	"time"

	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// GetByID devuelve (nil, nil) cuando la factura no existe.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// UpdateEstado persiste solo el estado (write-through del motor de
	// penalización y transiciones explícitas de estado).
	UpdateEstado(id, estado string, updatedAt time.Time) error
}
